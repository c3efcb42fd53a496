package get_planning

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/service/planning/models"
)

// PlanningResponse HTTP response model
type PlanningResponse struct {
	ID          int64     `json:"id"`
	ServiceID   int64     `json:"serviceId"`
	Label       string    `json:"label"`
	Description *string   `json:"description,omitempty"`
	Active      bool      `json:"active"`
	SlotCount   int       `json:"slotCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.PlanningResponse) *PlanningResponse {
	return &PlanningResponse{
		ID:          resp.ID,
		ServiceID:   resp.ServiceID,
		Label:       resp.Label,
		Description: resp.Description,
		Active:      resp.Active,
		SlotCount:   resp.SlotCount,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}
