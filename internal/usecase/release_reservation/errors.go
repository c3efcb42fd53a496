package release_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("release_reservation: invalid input data")

	// ErrInternal возвращается, когда не удалось даже получить список
	// audit-записей бронирования. Бизнес-ошибок у освобождения нет:
	// проблемы отдельных записей логируются и пропускаются.
	ErrInternal = errors.New("release_reservation: internal error")
)
