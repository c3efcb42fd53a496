package get_reservation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	getReservation "github.com/m04kA/SMC-CapacityService/internal/usecase/get_reservation"
)

const (
	msgInvalidReservationID = "некорректный идентификатор бронирования, ожидается UUID"
	msgReservationNotFound  = "бронирование не найдено"
)

type Handler struct {
	useCase GetReservationUseCase
	logger  Logger
}

func NewHandler(useCase GetReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := uuid.Parse(vars["reservationId"])
	if err != nil {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getReservation.Request{
		ReservationID: reservationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getReservation.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Not found: reservation=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, getReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		default:
			h.logger.Error("GET /reservations/{id} - Failed: reservation=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
