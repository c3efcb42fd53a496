package get_month_slots

import (
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/internal/service/planning/models"
)

// SlotResponse слот вместимости в календарном окне
type SlotResponse struct {
	ID                int64  `json:"id"`
	Date              string `json:"date"`
	MaxCapacity       int    `json:"maxCapacity"`
	ReservedCount     int    `json:"reservedCount"`
	AvailableCapacity int    `json:"availableCapacity"`
}

// MonthWindowResponse HTTP response model
type MonthWindowResponse struct {
	ServiceID int64          `json:"serviceId"`
	Year      int            `json:"year"`
	Month     int            `json:"month"`
	Slots     []SlotResponse `json:"slots"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.MonthWindowResponse) *MonthWindowResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:                s.ID,
			Date:              s.Date.Format(domain.DateFormat),
			MaxCapacity:       s.MaxCapacity,
			ReservedCount:     s.ReservedCount,
			AvailableCapacity: s.AvailableCapacity,
		})
	}

	return &MonthWindowResponse{
		ServiceID: resp.ServiceID,
		Year:      resp.Year,
		Month:     int(resp.Month),
		Slots:     slots,
	}
}
