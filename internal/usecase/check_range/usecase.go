package check_range

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	planningRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/planning"
)

// UseCase read-only проверка доступности диапазона дат
// Та же пре-проверка, что у бронирования, но без коммита и без блокировок.
// Результат - подсказка для витрины: между проверкой и бронированием даты
// может занять кто-то другой, гарантию даёт только само бронирование.
type UseCase struct {
	planningRepo PlanningRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(planningRepo PlanningRepository, logger Logger) *UseCase {
	return &UseCase{
		planningRepo: planningRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет доступность qty мест на каждую дату диапазона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckRange: validation failed: %v", err)
		return nil, err
	}

	startDate := domain.DateOnly(req.StartDate)
	endDate := startDate
	if req.EndDate != nil {
		endDate = domain.DateOnly(*req.EndDate)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = domain.DefaultQuantity
	}

	planning, err := uc.planningRepo.GetByServiceID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, planningRepo.ErrPlanningNotFound) {
			uc.logger.Warn("CheckRange: planning for service=%d not found", req.ServiceID)
			return nil, ErrPlanningNotFound
		}
		uc.logger.Error("CheckRange: failed to load planning for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to load planning: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	dates := domain.DatesInRange(startDate, endDate)

	conflicting := make([]time.Time, 0)
	for _, date := range dates {
		if !planning.IsAvailableForDate(date, quantity, now) {
			conflicting = append(conflicting, date)
		}
	}

	uc.logger.Info("CheckRange: service=%d, range=%s..%s, qty=%d, available=%t",
		req.ServiceID, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat),
		quantity, len(conflicting) == 0)

	return &Response{
		ServiceID:        req.ServiceID,
		StartDate:        startDate,
		EndDate:          endDate,
		Quantity:         quantity,
		Available:        len(conflicting) == 0,
		ConflictingDates: conflicting,
	}, nil
}

func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if req.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if req.EndDate != nil && domain.DateOnly(*req.EndDate).Before(domain.DateOnly(req.StartDate)) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}
	return nil
}
