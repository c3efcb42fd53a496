package domain

import (
	"fmt"
	"sort"
	"time"
)

// Planning календарь бронирования одной услуги - агрегат, владеющий всеми
// слотами вместимости этой услуги. Инвариант: не более одного слота на дату.
// Слоты изменяются только через методы Planning.
type Planning struct {
	ID          int64
	ServiceID   int64
	Label       string
	Description *string
	Active      bool
	Slots       []*AvailableSlot
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPlanning создает новый календарь для услуги
// Календарь создается активным и без слотов - даты открываются администратором
func NewPlanning(serviceID int64, label string, description *string, now time.Time) *Planning {
	return &Planning{
		ServiceID:   serviceID,
		Label:       label,
		Description: description,
		Active:      true,
		Slots:       make([]*AvailableSlot, 0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SlotForDate возвращает слот на указанную дату или nil, если дата не открыта
func (p *Planning) SlotForDate(date time.Time) *AvailableSlot {
	target := DateOnly(date)
	for _, slot := range p.Slots {
		if slot.Date.Equal(target) {
			return slot
		}
	}
	return nil
}

// AddSlot открывает новую дату для бронирования
func (p *Planning) AddSlot(date time.Time, maxCapacity int, now time.Time) (*AvailableSlot, error) {
	if existing := p.SlotForDate(date); existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateDate, DateOnly(date).Format(DateFormat))
	}

	slot, err := NewAvailableSlot(p.ID, date, maxCapacity, now)
	if err != nil {
		return nil, err
	}

	p.Slots = append(p.Slots, slot)
	p.UpdatedAt = now
	return slot, nil
}

// RemoveSlot закрывает дату для бронирования
// Отсутствие слота на дату - no-op. Слот с занятыми местами удалить нельзя:
// это оставило бы записи ReservationSlot без слота, на который они ссылаются.
func (p *Planning) RemoveSlot(date time.Time, now time.Time) error {
	target := DateOnly(date)
	for i, slot := range p.Slots {
		if !slot.Date.Equal(target) {
			continue
		}
		if slot.HasActiveHolds() {
			return fmt.Errorf("%w: date=%s, reserved=%d", ErrSlotHasActiveHolds,
				target.Format(DateFormat), slot.ReservedCount)
		}
		p.Slots = append(p.Slots[:i], p.Slots[i+1:]...)
		p.UpdatedAt = now
		return nil
	}
	return nil
}

// UpdateSlotCapacity изменяет вместимость слота на указанную дату
func (p *Planning) UpdateSlotCapacity(date time.Time, newMax int, now time.Time) error {
	slot := p.SlotForDate(date)
	if slot == nil {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, DateOnly(date).Format(DateFormat))
	}
	if err := slot.UpdateCapacity(newMax, now); err != nil {
		return err
	}
	p.UpdatedAt = now
	return nil
}

// ReserveSlot занимает qty мест на указанную дату
func (p *Planning) ReserveSlot(date time.Time, qty int, now time.Time) error {
	slot := p.SlotForDate(date)
	if slot == nil {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, DateOnly(date).Format(DateFormat))
	}
	if err := slot.Reserve(qty, now); err != nil {
		return err
	}
	p.UpdatedAt = now
	return nil
}

// CancelSlotReservation освобождает qty мест на указанную дату
func (p *Planning) CancelSlotReservation(date time.Time, qty int, now time.Time) error {
	slot := p.SlotForDate(date)
	if slot == nil {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, DateOnly(date).Format(DateFormat))
	}
	if err := slot.CancelReservation(qty, now); err != nil {
		return err
	}
	p.UpdatedAt = now
	return nil
}

// Enable включает приём новых бронирований
func (p *Planning) Enable(now time.Time) {
	p.Active = true
	p.UpdatedAt = now
}

// Disable отключает приём новых бронирований
// Существующие брони не затрагиваются и по-прежнему могут быть отменены
func (p *Planning) Disable(now time.Time) {
	p.Active = false
	p.UpdatedAt = now
}

// IsAvailableForDate проверяет доступность qty мест на дату
// Для отключённого календаря всегда false
func (p *Planning) IsAvailableForDate(date time.Time, qty int, now time.Time) bool {
	if !p.Active {
		return false
	}
	slot := p.SlotForDate(date)
	if slot == nil {
		return false
	}
	return slot.IsAvailable(qty, now)
}

// SlotsForMonth возвращает слоты, попадающие в указанный месяц,
// отсортированные по дате по возрастанию. Возвращаются копии - снимок
// для календарных витрин, не влияющий на состояние агрегата.
func (p *Planning) SlotsForMonth(year int, month time.Month) []AvailableSlot {
	result := make([]AvailableSlot, 0)
	for _, slot := range p.Slots {
		if slot.Date.Year() == year && slot.Date.Month() == month {
			result = append(result, *slot)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}
