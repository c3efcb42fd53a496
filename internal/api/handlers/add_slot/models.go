package add_slot

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/internal/service/planning/models"
)

// AddSlotRequest HTTP request model
type AddSlotRequest struct {
	Date        string `json:"date"`
	MaxCapacity int    `json:"maxCapacity"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID                int64  `json:"id"`
	Date              string `json:"date"`
	MaxCapacity       int    `json:"maxCapacity"`
	ReservedCount     int    `json:"reservedCount"`
	AvailableCapacity int    `json:"availableCapacity"`
}

// ToServiceRequest конвертирует HTTP request в запрос сервиса
func (r *AddSlotRequest) ToServiceRequest() (*models.AddSlotRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("add_slot: invalid date %q: %w", r.Date, err)
	}

	return &models.AddSlotRequest{
		Date:        date,
		MaxCapacity: r.MaxCapacity,
	}, nil
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
