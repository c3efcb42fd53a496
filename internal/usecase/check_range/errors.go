package check_range

import "errors"

var (
	// ErrPlanningNotFound возвращается, когда для услуги нет календаря
	ErrPlanningNotFound = errors.New("check_range: planning not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_range: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_range: internal error")
)
