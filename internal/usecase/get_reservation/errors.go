package get_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда у бронирования нет ни одной записи
	ErrReservationNotFound = errors.New("get_reservation: reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_reservation: internal error")
)
