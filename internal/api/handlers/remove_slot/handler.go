package remove_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	planningService "github.com/m04kA/SMC-CapacityService/internal/service/planning"
)

const (
	msgInvalidServiceID = "некорректный идентификатор услуги"
	msgInvalidDate      = "некорректная дата, ожидается YYYY-MM-DD"
	msgPlanningNotFound = "календарь услуги не найден"
	msgSlotHasHolds     = "на дату есть активные брони, сначала освободите места"
)

type Handler struct {
	service PlanningService
	logger  Logger
}

func NewHandler(service PlanningService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/plannings/{serviceId}/slots/{date}
// Отсутствие слота на дату - идемпотентный no-op, тоже 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /plannings/{serviceId}/slots/{date} - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /plannings/{serviceId}/slots/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.RemoveSlot(r.Context(), serviceID, date); err != nil {
		switch {
		case errors.Is(err, planningService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		case errors.Is(err, planningService.ErrPlanningNotFound):
			h.logger.Warn("DELETE /plannings/{serviceId}/slots/{date} - Planning not found: service=%d", serviceID)
			handlers.RespondNotFound(w, msgPlanningNotFound)

		case errors.Is(err, planningService.ErrSlotHasActiveHolds):
			h.logger.Warn("DELETE /plannings/{serviceId}/slots/{date} - Slot has active holds: service=%d, date=%s",
				serviceID, vars["date"])
			handlers.RespondConflict(w, msgSlotHasHolds)

		default:
			h.logger.Error("DELETE /plannings/{serviceId}/slots/{date} - Failed: service=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /plannings/{serviceId}/slots/{date} - Removed: service=%d, date=%s", serviceID, vars["date"])
	handlers.RespondNoContent(w)
}
