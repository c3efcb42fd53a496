package domain

import (
	"fmt"
	"time"
)

// AvailableSlot пул вместимости на одну дату календаря услуги
// Инварианты: maxCapacity > 0 и 0 <= reservedCount <= maxCapacity в любой момент
type AvailableSlot struct {
	ID            int64
	PlanningID    int64
	Date          time.Time // дата с дневной гранулярностью (полночь UTC)
	MaxCapacity   int
	ReservedCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewAvailableSlot создает новый слот на дату
func NewAvailableSlot(planningID int64, date time.Time, maxCapacity int, now time.Time) (*AvailableSlot, error) {
	if maxCapacity < MinSlotCapacity {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, maxCapacity)
	}

	return &AvailableSlot{
		PlanningID:  planningID,
		Date:        DateOnly(date),
		MaxCapacity: maxCapacity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// AvailableCapacity возвращает количество свободных мест
func (s *AvailableSlot) AvailableCapacity() int {
	return s.MaxCapacity - s.ReservedCount
}

// IsAvailable проверяет, можно ли занять qty мест
// Прошедшие даты недоступны независимо от оставшейся вместимости
func (s *AvailableSlot) IsAvailable(qty int, now time.Time) bool {
	if IsDateInPast(s.Date, now) {
		return false
	}
	return s.AvailableCapacity() >= qty
}

// Reserve занимает qty мест в слоте
func (s *AvailableSlot) Reserve(qty int, now time.Time) error {
	if qty <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	}
	if !s.IsAvailable(qty, now) {
		return fmt.Errorf("%w: date=%s, requested=%d, available=%d",
			ErrInsufficientCapacity, s.Date.Format(DateFormat), qty, s.AvailableCapacity())
	}

	s.ReservedCount += qty
	s.UpdatedAt = now
	return nil
}

// CancelReservation освобождает qty мест в слоте
// Отмена допустима и для прошедших дат - занятые места всегда можно вернуть
func (s *AvailableSlot) CancelReservation(qty int, now time.Time) error {
	if qty <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	}
	if qty > s.ReservedCount {
		return fmt.Errorf("%w: date=%s, requested=%d, reserved=%d",
			ErrOverRelease, s.Date.Format(DateFormat), qty, s.ReservedCount)
	}

	s.ReservedCount -= qty
	s.UpdatedAt = now
	return nil
}

// UpdateCapacity изменяет максимальную вместимость слота
// Уменьшение ниже текущего reservedCount запрещено: молчаливое урезание занятых мест
// оставило бы "висящие" записи ReservationSlot, которые слот уже не отражает.
// Сначала нужно явно освободить лишние брони.
func (s *AvailableSlot) UpdateCapacity(newMax int, now time.Time) error {
	if newMax < MinSlotCapacity {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, newMax)
	}
	if newMax < s.ReservedCount {
		return fmt.Errorf("%w: newMax=%d, reserved=%d", ErrCapacityBelowReserved, newMax, s.ReservedCount)
	}

	s.MaxCapacity = newMax
	s.UpdatedAt = now
	return nil
}

// HasActiveHolds возвращает true, если в слоте есть занятые места
func (s *AvailableSlot) HasActiveHolds() bool {
	return s.ReservedCount > 0
}
