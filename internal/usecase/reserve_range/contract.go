package reserve_range

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// PlanningRepository интерфейс репозитория календарей
type PlanningRepository interface {
	GetByServiceID(ctx context.Context, serviceID int64) (*domain.Planning, error)
	ReserveSlotCapacity(ctx context.Context, slotID int64, qty int) error
}

// ReservationSlotRepository интерфейс репозитория audit-записей
type ReservationSlotRepository interface {
	CreateBatch(ctx context.Context, slots []*domain.ReservationSlot) error
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
