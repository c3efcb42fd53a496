package get_reservation

import (
	"time"

	getReservation "github.com/m04kA/SMC-CapacityService/internal/usecase/get_reservation"
)

// HoldResponse одно место бронирования
type HoldResponse struct {
	AvailableSlotID int64   `json:"availableSlotId"`
	ReservedAt      string  `json:"reservedAt"`
	ReleasedAt      *string `json:"releasedAt,omitempty"`
}

// GetReservationResponse HTTP response model
type GetReservationResponse struct {
	ReservationID string         `json:"reservationId"`
	Holds         []HoldResponse `json:"holds"`
	Active        int            `json:"active"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getReservation.Response) *GetReservationResponse {
	holds := make([]HoldResponse, 0, len(resp.Holds))
	for _, h := range resp.Holds {
		hold := HoldResponse{
			AvailableSlotID: h.AvailableSlotID,
			ReservedAt:      h.ReservedAt.Format(time.RFC3339),
		}
		if h.ReleasedAt != nil {
			released := h.ReleasedAt.Format(time.RFC3339)
			hold.ReleasedAt = &released
		}
		holds = append(holds, hold)
	}

	return &GetReservationResponse{
		ReservationID: resp.ReservationID.String(),
		Holds:         holds,
		Active:        resp.Active,
	}
}
