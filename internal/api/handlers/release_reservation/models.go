package release_reservation

import releaseReservation "github.com/m04kA/SMC-CapacityService/internal/usecase/release_reservation"

// ReleaseReservationResponse HTTP response model
type ReleaseReservationResponse struct {
	ReservationID string `json:"reservationId"`
	Released      int    `json:"released"`
	Unresolved    int    `json:"unresolved,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *releaseReservation.Response) *ReleaseReservationResponse {
	return &ReleaseReservationResponse{
		ReservationID: resp.ReservationID.String(),
		Released:      resp.Released,
		Unresolved:    resp.Unresolved,
	}
}
