package get_reservation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UseCase read-only выборка состояния бронирования по audit-записям
// Показывает и занятые, и уже освобождённые места - историю удержания целиком
type UseCase struct {
	auditRepo ReservationSlotRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(auditRepo ReservationSlotRepository, logger Logger) *UseCase {
	return &UseCase{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Execute возвращает все записи бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ReservationID == uuid.Nil {
		return nil, fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}

	rows, err := uc.auditRepo.GetByReservationID(ctx, req.ReservationID)
	if err != nil {
		uc.logger.Error("GetReservation: failed to load rows for reservation=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to load reservation slots: %v", ErrInternal, err)
	}

	if len(rows) == 0 {
		uc.logger.Warn("GetReservation: reservation=%s has no records", req.ReservationID)
		return nil, ErrReservationNotFound
	}

	holds := make([]Hold, 0, len(rows))
	active := 0
	for _, row := range rows {
		holds = append(holds, Hold{
			AvailableSlotID: row.AvailableSlotID,
			ReservedAt:      row.ReservedAt,
			ReleasedAt:      row.ReleasedAt,
		})
		if row.IsActive() {
			active++
		}
	}

	return &Response{
		ReservationID: req.ReservationID,
		Holds:         holds,
		Active:        active,
	}, nil
}
