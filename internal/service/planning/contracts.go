package planning

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/internal/integrations/serviceregistry"
)

// PlanningRepository интерфейс репозитория календарей
type PlanningRepository interface {
	Create(ctx context.Context, planning *domain.Planning) (*domain.Planning, error)
	GetByServiceID(ctx context.Context, serviceID int64) (*domain.Planning, error)
	SetActive(ctx context.Context, planningID int64, active bool) error
	CreateSlot(ctx context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error)
	DeleteSlot(ctx context.Context, slotID int64) error
	UpdateSlotCapacity(ctx context.Context, slotID int64, newMax int) error
	GetSlotsForMonth(ctx context.Context, serviceID int64, year int, month time.Month) ([]*domain.AvailableSlot, error)
}

// ServiceRegistryClient интерфейс клиента реестра услуг
type ServiceRegistryClient interface {
	GetService(ctx context.Context, serviceID int64) (*serviceregistry.Service, error)
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
