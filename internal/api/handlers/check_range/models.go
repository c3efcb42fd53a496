package check_range

import (
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	checkRange "github.com/m04kA/SMC-CapacityService/internal/usecase/check_range"
)

// CheckRangeResponse HTTP response model
type CheckRangeResponse struct {
	ServiceID        int64    `json:"serviceId"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Quantity         int      `json:"quantity"`
	Available        bool     `json:"available"`
	ConflictingDates []string `json:"conflictingDates,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkRange.Response) *CheckRangeResponse {
	dates := make([]string, 0, len(resp.ConflictingDates))
	for _, d := range resp.ConflictingDates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	return &CheckRangeResponse{
		ServiceID:        resp.ServiceID,
		StartDate:        resp.StartDate.Format(domain.DateFormat),
		EndDate:          resp.EndDate.Format(domain.DateFormat),
		Quantity:         resp.Quantity,
		Available:        resp.Available,
		ConflictingDates: dates,
	}
}
