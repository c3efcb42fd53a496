package get_month_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	planningService "github.com/m04kA/SMC-CapacityService/internal/service/planning"
	"github.com/m04kA/SMC-CapacityService/internal/service/planning/models"
)

const (
	msgInvalidServiceID = "некорректный идентификатор услуги"
	msgInvalidParams    = "некорректные параметры, ожидаются year и month (1-12)"
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

// Handle GET /api/v1/plannings/{serviceId}/slots?year=...&month=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /plannings/{serviceId}/slots - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil || year < 1 {
		h.logger.Warn("GET /plannings/{serviceId}/slots - Invalid year: %q", query.Get("year"))
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /plannings/{serviceId}/slots - Invalid month: %q", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetMonthWindow(r.Context(), &models.MonthWindowRequest{
		ServiceID: serviceID,
		Year:      year,
		Month:     time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, planningService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, planningService.ErrPlanningNotFound):
			h.logger.Warn("GET /plannings/{serviceId}/slots - Planning not found: service=%d", serviceID)
			handlers.RespondNotFound(w, msgPlanningNotFound)

		default:
			h.logger.Error("GET /plannings/{serviceId}/slots - Failed: service=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
