package get_reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// ReservationSlotRepository интерфейс репозитория audit-записей
type ReservationSlotRepository interface {
	GetByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*domain.ReservationSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
