package release_reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// PlanningRepository интерфейс репозитория календарей
type PlanningRepository interface {
	ReleaseSlotCapacity(ctx context.Context, slotID int64, qty int) error
}

// ReservationSlotRepository интерфейс репозитория audit-записей
type ReservationSlotRepository interface {
	GetActiveByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*domain.ReservationSlot, error)
	MarkReleased(ctx context.Context, id int64, releasedAt time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
