package reserve_range

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	reserveRange "github.com/m04kA/SMC-CapacityService/internal/usecase/reserve_range"
)

// ReserveRangeRequest HTTP request model
type ReserveRangeRequest struct {
	ReservationID string  `json:"reservationId"` // UUID внешнего бронирования
	ServiceID     int64   `json:"serviceId"`
	StartDate     string  `json:"startDate"`         // "2025-09-10"
	EndDate       *string `json:"endDate,omitempty"` // опционально, nil = один день
	Quantity      int     `json:"quantity,omitempty"`
}

// ReservedDateResponse одна удержанная дата
type ReservedDateResponse struct {
	Date            string `json:"date"`
	AvailableSlotID int64  `json:"availableSlotId"`
}

// ReserveRangeResponse HTTP response model
type ReserveRangeResponse struct {
	ReservationID string                 `json:"reservationId"`
	ServiceID     int64                  `json:"serviceId"`
	StartDate     string                 `json:"startDate"`
	EndDate       string                 `json:"endDate"`
	Quantity      int                    `json:"quantity"`
	Dates         []ReservedDateResponse `json:"dates"`
	ReservedAt    string                 `json:"reservedAt"`
}

// ConflictResponse HTTP response при недоступности части дат диапазона
type ConflictResponse struct {
	Error            string   `json:"error"`
	ConflictingDates []string `json:"conflictingDates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveRangeRequest) ToUseCaseRequest() (*reserveRange.Request, error) {
	reservationID, err := uuid.Parse(r.ReservationID)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if r.EndDate != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &parsed
	}

	return &reserveRange.Request{
		ReservationID: reservationID,
		ServiceID:     r.ServiceID,
		StartDate:     startDate,
		EndDate:       endDate,
		Quantity:      r.Quantity,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveRange.Response) *ReserveRangeResponse {
	dates := make([]ReservedDateResponse, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, ReservedDateResponse{
			Date:            d.Date.Format(domain.DateFormat),
			AvailableSlotID: d.AvailableSlotID,
		})
	}

	return &ReserveRangeResponse{
		ReservationID: resp.ReservationID.String(),
		ServiceID:     resp.ServiceID,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		Quantity:      resp.Quantity,
		Dates:         dates,
		ReservedAt:    resp.ReservedAt.Format(time.RFC3339),
	}
}
