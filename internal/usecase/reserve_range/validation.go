package reserve_range

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Количество по умолчанию и нормализация дат выполняются до валидации диапазона
func validateRequest(req *Request) error {
	if req.ReservationID == uuid.Nil {
		return fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	if req.EndDate != nil {
		start := domain.DateOnly(req.StartDate)
		end := domain.DateOnly(*req.EndDate)

		if end.Before(start) {
			return fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
		}

		if int(end.Sub(start).Hours()/24)+1 > domain.MaxRangeDays {
			return fmt.Errorf("%w: range exceeds %d days", ErrInvalidInput, domain.MaxRangeDays)
		}
	}

	return nil
}
