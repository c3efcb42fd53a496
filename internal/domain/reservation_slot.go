package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReservationSlot audit-запись: одно место на одну дату, занятое одним внешним
// бронированием. Пара (reservationID, availableSlotID) уникальна. Записи никогда
// не удаляются физически - после освобождения места строка остаётся как след
// для аудита и сверки.
type ReservationSlot struct {
	ID              int64
	ReservationID   uuid.UUID // внешний идентификатор бронирования, непрозрачный для ядра
	AvailableSlotID int64
	ReservedAt      time.Time
	ReleasedAt      *time.Time // nil = место всё ещё занято
}

// NewReservationSlot создает новую audit-запись о занятом месте
func NewReservationSlot(reservationID uuid.UUID, availableSlotID int64, now time.Time) *ReservationSlot {
	return &ReservationSlot{
		ReservationID:   reservationID,
		AvailableSlotID: availableSlotID,
		ReservedAt:      now,
	}
}

// IsActive возвращает true, пока место занято (releasedAt не проставлен)
func (rs *ReservationSlot) IsActive() bool {
	return rs.ReleasedAt == nil
}

// Release помечает место освобождённым
// Повторный вызов - no-op (возвращает false), освобождение идемпотентно.
// Однажды проставленный releasedAt никогда не сбрасывается: повторное
// бронирование создаёт новую запись, а не реактивирует старую.
func (rs *ReservationSlot) Release(now time.Time) bool {
	if rs.ReleasedAt != nil {
		return false
	}
	rs.ReleasedAt = &now
	return true
}
