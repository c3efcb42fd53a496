package models

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// CreatePlanningRequest запрос на создание календаря услуги
type CreatePlanningRequest struct {
	ServiceID   int64   // ID услуги из внешнего реестра
	Label       string  // Название календаря
	Description *string // Описание (опционально)
}

// PlanningResponse календарь услуги
type PlanningResponse struct {
	ID          int64
	ServiceID   int64
	Label       string
	Description *string
	Active      bool
	SlotCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AddSlotRequest запрос на открытие даты
type AddSlotRequest struct {
	Date        time.Time // Дата (дневная гранулярность)
	MaxCapacity int       // Максимальная вместимость
}

// SlotResponse слот вместимости на одну дату
type SlotResponse struct {
	ID                int64
	Date              time.Time
	MaxCapacity       int
	ReservedCount     int
	AvailableCapacity int
}

// MonthWindowRequest запрос календарного окна на месяц
type MonthWindowRequest struct {
	ServiceID int64
	Year      int
	Month     time.Month
}

// MonthWindowResponse снимок слотов услуги за месяц,
// отсортированный по дате по возрастанию
type MonthWindowResponse struct {
	ServiceID int64
	Year      int
	Month     time.Month
	Slots     []SlotResponse
}

// FromDomainPlanning конвертирует domain.Planning в response
func FromDomainPlanning(p *domain.Planning) *PlanningResponse {
	return &PlanningResponse{
		ID:          p.ID,
		ServiceID:   p.ServiceID,
		Label:       p.Label,
		Description: p.Description,
		Active:      p.Active,
		SlotCount:   len(p.Slots),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromDomainSlot конвертирует domain.AvailableSlot в response
func FromDomainSlot(s *domain.AvailableSlot) *SlotResponse {
	return &SlotResponse{
		ID:                s.ID,
		Date:              s.Date,
		MaxCapacity:       s.MaxCapacity,
		ReservedCount:     s.ReservedCount,
		AvailableCapacity: s.AvailableCapacity(),
	}
}

// FromDomainSlotList конвертирует список слотов в responses
func FromDomainSlotList(slots []*domain.AvailableSlot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, *FromDomainSlot(s))
	}
	return result
}
