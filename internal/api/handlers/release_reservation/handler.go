package release_reservation

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	releaseReservation "github.com/m04kA/SMC-CapacityService/internal/usecase/release_reservation"
)

const (
	msgInvalidReservationID = "некорректный идентификатор бронирования, ожидается UUID"
)

type Handler struct {
	useCase ReleaseReservationUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/release
// Освобождение best-effort: бизнес-ошибок нет, повторный вызов - no-op
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := uuid.Parse(vars["reservationId"])
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/release - Invalid reservation id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &releaseReservation.Request{
		ReservationID: reservationID,
	})
	if err != nil {
		h.logger.Error("POST /reservations/{id}/release - Failed to release: reservation=%s, error=%v",
			reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reservations/{id}/release - Released: reservation=%s, released=%d, unresolved=%d",
		reservationID, result.Released, result.Unresolved)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
