package reserve_range

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

var (
	// ErrPlanningNotFound возвращается, когда для услуги нет календаря
	ErrPlanningNotFound = errors.New("reserve_range: planning not found")

	// ErrPlanningInactive возвращается, когда календарь отключён
	ErrPlanningInactive = errors.New("reserve_range: planning is inactive")

	// ErrCapacityConflict возвращается, когда хотя бы одна дата диапазона
	// недоступна; конкретные даты - в CapacityConflictError
	ErrCapacityConflict = errors.New("reserve_range: capacity conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_range: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_range: internal error")
)

// CapacityConflictError ошибка с перечнем недоступных дат диапазона
// Это ожидаемый, не исключительный исход ("кто-то уже занял этот день") -
// вызывающая сторона показывает даты конечному пользователю
type CapacityConflictError struct {
	Dates []time.Time
}

// Error возвращает текст ошибки с перечнем конфликтующих дат
func (e *CapacityConflictError) Error() string {
	formatted := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		formatted[i] = d.Format(domain.DateFormat)
	}
	return fmt.Sprintf("reserve_range: capacity conflict on dates [%s]", strings.Join(formatted, ", "))
}

// Is сопоставляет CapacityConflictError с сентинелом ErrCapacityConflict
func (e *CapacityConflictError) Is(target error) bool {
	return target == ErrCapacityConflict
}
