package reserve_range

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	planningRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/planning"
)

// UseCase use case диапазонного бронирования вместимости
// Бронирование на несколько дней бесполезно, если удержана только часть дней,
// поэтому диапазон обрабатывается строго "всё или ничего": сначала пре-проверка
// всех дат без единой мутации, затем коммит по всем датам сразу.
//
// Конкурентная корректность: весь цикл проверка+коммит выполняется в
// SERIALIZABLE транзакции, слоты календаря загружаются FOR UPDATE, а сам
// инкремент reserved_count - условное обновление на стороне БД. Конфликт
// сериализации повторяется один раз по свежему состоянию (txmanager).
type UseCase struct {
	planningRepo PlanningRepository
	auditRepo    ReservationSlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	planningRepo PlanningRepository,
	auditRepo ReservationSlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		planningRepo: planningRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет диапазонное бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveRange: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем диапазон: даты с дневной гранулярностью,
	// отсутствующий endDate означает однодневное бронирование
	startDate := domain.DateOnly(req.StartDate)
	endDate := startDate
	if req.EndDate != nil {
		endDate = domain.DateOnly(*req.EndDate)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = domain.DefaultQuantity
	}

	uc.logger.Info("ReserveRange: reservation=%s, service=%d, range=%s..%s, qty=%d",
		req.ReservationID, req.ServiceID,
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat), quantity)

	var result *Response

	// 3. Пре-проверка и коммит атомарны относительно конкурентных бронирований
	// того же календаря (см. комментарий к UseCase)
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := uc.reserve(txCtx, req, startDate, endDate, quantity)
		if err != nil {
			return err
		}
		result = res
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReserveRange: reservation=%s held %d dates for service=%d",
		req.ReservationID, len(result.Dates), req.ServiceID)

	return result, nil
}

func (uc *UseCase) reserve(ctx context.Context, req *Request, startDate, endDate time.Time, quantity int) (*Response, error) {
	now := uc.timeProvider.Now()

	// Загружаем календарь услуги (слоты блокируются FOR UPDATE)
	planning, err := uc.planningRepo.GetByServiceID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, planningRepo.ErrPlanningNotFound) {
			uc.logger.Warn("ReserveRange: planning for service=%d not found", req.ServiceID)
			return nil, ErrPlanningNotFound
		}
		uc.logger.Error("ReserveRange: failed to load planning for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to load planning: %v", ErrInternal, err)
	}

	// Отключённый календарь не принимает новые бронирования
	if !planning.Active {
		uc.logger.Warn("ReserveRange: planning for service=%d is inactive", req.ServiceID)
		return nil, ErrPlanningInactive
	}

	dates := domain.DatesInRange(startDate, endDate)

	// Пре-проверка: каждая дата диапазона оценивается без единой мутации.
	// Отсутствующий слот считается недоступной датой.
	conflicting := make([]time.Time, 0)
	for _, date := range dates {
		slot := planning.SlotForDate(date)
		if slot == nil || !slot.IsAvailable(quantity, now) {
			conflicting = append(conflicting, date)
		}
	}

	if len(conflicting) > 0 {
		uc.logger.Warn("ReserveRange: reservation=%s, %d of %d dates unavailable",
			req.ReservationID, len(conflicting), len(dates))
		return nil, &CapacityConflictError{Dates: conflicting}
	}

	// Отмена вызывающей стороны учитывается до начала коммита;
	// после начала коммит идёт до конца в рамках транзакции
	if err := ctx.Err(); err != nil {
		uc.logger.Warn("ReserveRange: reservation=%s cancelled before commit: %v", req.ReservationID, err)
		return nil, err
	}

	// Коммит: занимаем места на каждую дату по порядку и создаём audit-записи
	reserved := make([]ReservedDate, 0, len(dates))
	auditRows := make([]*domain.ReservationSlot, 0, len(dates))

	for _, date := range dates {
		slot := planning.SlotForDate(date)

		if err := slot.Reserve(quantity, now); err != nil {
			// Недостижимо после пре-проверки под блокировкой, но инвариант
			// агрегата проверяется безусловно
			return nil, &CapacityConflictError{Dates: []time.Time{date}}
		}

		if err := uc.planningRepo.ReserveSlotCapacity(ctx, slot.ID, quantity); err != nil {
			if errors.Is(err, planningRepo.ErrCapacityExceeded) {
				return nil, &CapacityConflictError{Dates: []time.Time{date}}
			}
			uc.logger.Error("ReserveRange: failed to reserve slot id=%d: %v", slot.ID, err)
			return nil, fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
		}

		reserved = append(reserved, ReservedDate{Date: date, AvailableSlotID: slot.ID})
		auditRows = append(auditRows, domain.NewReservationSlot(req.ReservationID, slot.ID, now))
	}

	if err := uc.auditRepo.CreateBatch(ctx, auditRows); err != nil {
		uc.logger.Error("ReserveRange: failed to create audit rows for reservation=%s: %v",
			req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to create reservation slots: %v", ErrInternal, err)
	}

	return &Response{
		ReservationID: req.ReservationID,
		ServiceID:     req.ServiceID,
		StartDate:     startDate,
		EndDate:       endDate,
		Quantity:      quantity,
		Dates:         reserved,
		ReservedAt:    now,
	}, nil
}
