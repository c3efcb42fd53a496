package get_planning

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	planningService "github.com/m04kA/SMC-CapacityService/internal/service/planning"
)

const (
	msgInvalidServiceID = "некорректный идентификатор услуги"
	msgPlanningNotFound = "календарь услуги не найден"
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

// Handle GET /api/v1/plannings/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /plannings/{serviceId} - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.GetPlanning(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, planningService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		case errors.Is(err, planningService.ErrPlanningNotFound):
			h.logger.Warn("GET /plannings/{serviceId} - Planning not found: service=%d", serviceID)
			handlers.RespondNotFound(w, msgPlanningNotFound)

		default:
			h.logger.Error("GET /plannings/{serviceId} - Failed: service=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
