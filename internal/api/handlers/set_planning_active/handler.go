package set_planning_active

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	planningService "github.com/m04kA/SMC-CapacityService/internal/service/planning"
)

const (
	msgInvalidServiceID   = "некорректный идентификатор услуги"
	msgInvalidRequestBody = "некорректное тело запроса, ожидается поле active"
	msgPlanningNotFound   = "календарь услуги не найден"
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

// Handle PATCH /api/v1/plannings/{serviceId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /plannings/{serviceId}/active - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Active == nil {
		h.logger.Warn("PATCH /plannings/{serviceId}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetActive(r.Context(), serviceID, *req.Active); err != nil {
		switch {
		case errors.Is(err, planningService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		case errors.Is(err, planningService.ErrPlanningNotFound):
			h.logger.Warn("PATCH /plannings/{serviceId}/active - Planning not found: service=%d", serviceID)
			handlers.RespondNotFound(w, msgPlanningNotFound)

		default:
			h.logger.Error("PATCH /plannings/{serviceId}/active - Failed: service=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /plannings/{serviceId}/active - Updated: service=%d, active=%t", serviceID, *req.Active)
	handlers.RespondJSON(w, http.StatusOK, SetActiveResponse{
		ServiceID: serviceID,
		Active:    *req.Active,
	})
}
