package add_slot

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
	msgInvalidRequestBody = "некорректное тело запроса, ожидаются date YYYY-MM-DD и maxCapacity"
	msgInvalidInput       = "некорректные данные слота"
	msgPlanningNotFound   = "календарь услуги не найден"
	msgDuplicateDate      = "слот на эту дату уже открыт"
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

// Handle POST /api/v1/plannings/{serviceId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /plannings/{serviceId}/slots - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req AddSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /plannings/{serviceId}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /plannings/{serviceId}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddSlot(r.Context(), serviceID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, planningService.ErrInvalidInput):
			h.logger.Warn("POST /plannings/{serviceId}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, planningService.ErrPlanningNotFound):
			h.logger.Warn("POST /plannings/{serviceId}/slots - Planning not found: service=%d", serviceID)
			handlers.RespondNotFound(w, msgPlanningNotFound)

		case errors.Is(err, planningService.ErrDuplicateDate):
			h.logger.Warn("POST /plannings/{serviceId}/slots - Duplicate date %s: service=%d", req.Date, serviceID)
			handlers.RespondConflict(w, msgDuplicateDate)

		default:
			h.logger.Error("POST /plannings/{serviceId}/slots - Failed: service=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /plannings/{serviceId}/slots - Created slot id=%d: service=%d, date=%s",
		result.ID, serviceID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
