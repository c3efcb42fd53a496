package update_slot_capacity

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
	msgInvalidServiceID      = "некорректный идентификатор услуги"
	msgInvalidDate           = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidRequestBody    = "некорректное тело запроса, ожидается maxCapacity"
	msgInvalidInput          = "некорректное значение вместимости"
	msgPlanningNotFound      = "календарь услуги не найден"
	msgSlotNotFound          = "слот на эту дату не найден"
	msgCapacityBelowReserved = "новая вместимость меньше числа занятых мест"
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

// Handle PUT /api/v1/plannings/{serviceId}/slots/{date}/capacity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /plannings/{serviceId}/slots/{date}/capacity - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("PUT /plannings/{serviceId}/slots/{date}/capacity - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req UpdateCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /plannings/{serviceId}/slots/{date}/capacity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSlotCapacity(r.Context(), serviceID, date, req.MaxCapacity)
	if err != nil {
		switch {
		case errors.Is(err, planningService.ErrInvalidInput):
			h.logger.Warn("PUT /plannings/{serviceId}/slots/{date}/capacity - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, planningService.ErrPlanningNotFound):
			h.logger.Warn("PUT /plannings/{serviceId}/slots/{date}/capacity - Planning not found: service=%d", serviceID)
			handlers.RespondNotFound(w, msgPlanningNotFound)

		case errors.Is(err, planningService.ErrSlotNotFound):
			h.logger.Warn("PUT /plannings/{serviceId}/slots/{date}/capacity - Slot not found: service=%d, date=%s",
				serviceID, vars["date"])
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, planningService.ErrCapacityBelowReserved):
			h.logger.Warn("PUT /plannings/{serviceId}/slots/{date}/capacity - Capacity below reserved: service=%d, date=%s, newMax=%d",
				serviceID, vars["date"], req.MaxCapacity)
			handlers.RespondConflict(w, msgCapacityBelowReserved)

		default:
			h.logger.Error("PUT /plannings/{serviceId}/slots/{date}/capacity - Failed: service=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /plannings/{serviceId}/slots/{date}/capacity - Updated: slot id=%d, maxCapacity=%d",
		result.ID, result.MaxCapacity)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
