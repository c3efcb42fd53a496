package update_slot_capacity

import (
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/internal/service/planning/models"
)

// UpdateCapacityRequest HTTP request model
type UpdateCapacityRequest struct {
	MaxCapacity int `json:"maxCapacity"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID                int64  `json:"id"`
	Date              string `json:"date"`
	MaxCapacity       int    `json:"maxCapacity"`
	ReservedCount     int    `json:"reservedCount"`
	AvailableCapacity int    `json:"availableCapacity"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SlotResponse) *SlotResponse {
	return &SlotResponse{
		ID:                resp.ID,
		Date:              resp.Date.Format(domain.DateFormat),
		MaxCapacity:       resp.MaxCapacity,
		ReservedCount:     resp.ReservedCount,
		AvailableCapacity: resp.AvailableCapacity,
	}
}
