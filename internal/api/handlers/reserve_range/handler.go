package reserve_range

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	reserveRange "github.com/m04kA/SMC-CapacityService/internal/usecase/reserve_range"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные параметры бронирования, ожидаются reservationId (UUID) и даты YYYY-MM-DD"
	msgPlanningNotFound   = "календарь услуги не найден"
	msgPlanningInactive   = "календарь услуги не принимает бронирования"
	msgCapacityConflict   = "недостаточно мест на часть дат диапазона"
)

type Handler struct {
	useCase ReserveRangeUseCase
	logger  Logger
}

func NewHandler(useCase ReserveRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReserveRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *reserveRange.CapacityConflictError

		switch {
		case errors.As(err, &conflict):
			// Ожидаемый исход: часть дат уже занята - отдаём их списком
			h.logger.Warn("POST /reservations - Capacity conflict: reservation=%s, service=%d, dates=%d",
				req.ReservationID, req.ServiceID, len(conflict.Dates))
			dates := make([]string, 0, len(conflict.Dates))
			for _, d := range conflict.Dates {
				dates = append(dates, d.Format(domain.DateFormat))
			}
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:            msgCapacityConflict,
				ConflictingDates: dates,
			})

		case errors.Is(err, reserveRange.ErrPlanningNotFound):
			h.logger.Warn("POST /reservations - Planning not found: service=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgPlanningNotFound)

		case errors.Is(err, reserveRange.ErrPlanningInactive):
			h.logger.Warn("POST /reservations - Planning inactive: service=%d", req.ServiceID)
			handlers.RespondConflict(w, msgPlanningInactive)

		case errors.Is(err, reserveRange.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /reservations - Failed to reserve range: reservation=%s, service=%d, error=%v",
				req.ReservationID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Range reserved: reservation=%s, service=%d, dates=%d",
		req.ReservationID, req.ServiceID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
