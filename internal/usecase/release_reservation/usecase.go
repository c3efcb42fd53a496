package release_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	planningRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/planning"
)

// UseCase use case освобождения вместимости, занятой бронированием
// В отличие от бронирования, освобождение выполняется best-effort: отмена,
// видимая пользователю, обязана завершиться. Каждая audit-запись
// обрабатывается в собственной транзакции, проблемная запись логируется
// и не блокирует освобождение остальных. Повторный вызов - no-op.
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

// Execute освобождает все ещё занятые места бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ReservationID == uuid.Nil {
		return nil, fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}

	uc.logger.Info("ReleaseReservation: reservation=%s", req.ReservationID)

	rows, err := uc.auditRepo.GetActiveByReservationID(ctx, req.ReservationID)
	if err != nil {
		uc.logger.Error("ReleaseReservation: failed to load audit rows for reservation=%s: %v",
			req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to load reservation slots: %v", ErrInternal, err)
	}

	if len(rows) == 0 {
		// Уже освобождено (или никогда не держало мест) - идемпотентный no-op
		uc.logger.Info("ReleaseReservation: reservation=%s has no active holds", req.ReservationID)
		return &Response{ReservationID: req.ReservationID}, nil
	}

	released := 0
	unresolved := 0

	for _, row := range rows {
		returned, err := uc.releaseRow(ctx, row)
		if err != nil {
			// Запись остаётся на сверку, освобождение остальных продолжается
			uc.logger.Error("ReleaseReservation: unresolved release, reservation=%s, row=%d, slot=%d: %v",
				req.ReservationID, row.ID, row.AvailableSlotID, err)
			unresolved++
			continue
		}
		if !returned {
			unresolved++
			continue
		}
		released++
	}

	uc.logger.Info("ReleaseReservation: reservation=%s released=%d unresolved=%d",
		req.ReservationID, released, unresolved)

	return &Response{
		ReservationID: req.ReservationID,
		Released:      released,
		Unresolved:    unresolved,
	}, nil
}

// releaseRow возвращает одно место слоту и штампует released_at как единое целое
// Одна audit-запись представляет одно место на один день, поэтому qty всегда 1.
// Возвращает false, если запись закрыта, но вернуть место слоту не удалось
// (слот удалён или его счётчик уже на нуле) - такой случай идёт на сверку.
func (uc *UseCase) releaseRow(ctx context.Context, row *domain.ReservationSlot) (bool, error) {
	now := uc.timeProvider.Now()
	returned := true

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Сначала закрываем запись: место возвращается слоту только при
		// переходе записи из активной в освобождённую. Параллельное
		// освобождение той же записи не уменьшит счётчик второй раз.
		updated, err := uc.auditRepo.MarkReleased(txCtx, row.ID, now)
		if err != nil {
			return err
		}
		if !updated {
			// Запись успели освободить параллельно - идемпотентный исход
			uc.logger.Info("ReleaseReservation: row=%d already released", row.ID)
			return nil
		}

		err = uc.planningRepo.ReleaseSlotCapacity(txCtx, row.AvailableSlotID, 1)
		switch {
		case err == nil:
			// Место возвращено слоту
		case errors.Is(err, planningRepo.ErrSlotNotFound):
			// Слот удалён после бронирования. Вернуть место некуда, но запись
			// закрываем: вечно активная запись была бы постоянной утечкой.
			uc.logger.Warn("ReleaseReservation: slot id=%d no longer exists, closing row=%d without returning capacity",
				row.AvailableSlotID, row.ID)
			returned = false
		case errors.Is(err, planningRepo.ErrNothingReserved):
			// Счётчик слота уже на нуле - возвращать нечего, запись закрываем
			uc.logger.Warn("ReleaseReservation: slot id=%d has nothing reserved, closing row=%d",
				row.AvailableSlotID, row.ID)
			returned = false
		default:
			return err
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return returned, nil
}
