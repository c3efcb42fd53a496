package reservationslot

import "errors"

var (
	// ErrRowNotFound возвращается, когда audit-запись не найдена
	ErrRowNotFound = errors.New("reservationslot.repository: row not found")

	// ErrDuplicateLink возвращается при попытке создать вторую запись
	// для той же пары (reservation_id, available_slot_id)
	ErrDuplicateLink = errors.New("reservationslot.repository: link already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservationslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservationslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservationslot.repository: failed to scan row")
)
