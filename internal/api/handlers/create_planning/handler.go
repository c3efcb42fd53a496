package create_planning

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	planningService "github.com/m04kA/SMC-CapacityService/internal/service/planning"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные календаря"
	msgServiceNotFound    = "услуга не найдена в реестре"
	msgPlanningExists     = "календарь для этой услуги уже существует"
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

// Handle POST /api/v1/plannings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanningRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /plannings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreatePlanning(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, planningService.ErrInvalidInput):
			h.logger.Warn("POST /plannings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, planningService.ErrServiceNotFound):
			h.logger.Warn("POST /plannings - Service not found: service=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, planningService.ErrPlanningExists):
			h.logger.Warn("POST /plannings - Planning already exists: service=%d", req.ServiceID)
			handlers.RespondConflict(w, msgPlanningExists)

		default:
			h.logger.Error("POST /plannings - Failed to create planning: service=%d, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /plannings - Created planning id=%d for service=%d", result.ID, result.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
