package check_range

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	checkRange "github.com/m04kA/SMC-CapacityService/internal/usecase/check_range"
)

const (
	msgInvalidServiceID = "некорректный идентификатор услуги"
	msgInvalidParams    = "некорректные параметры, ожидаются startDate YYYY-MM-DD, endDate YYYY-MM-DD и quantity > 0"
	msgPlanningNotFound = "календарь услуги не найден"
)

type Handler struct {
	useCase CheckRangeUseCase
	logger  Logger
}

func NewHandler(useCase CheckRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/plannings/{serviceId}/availability?startDate=...&endDate=...&quantity=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /plannings/{serviceId}/availability - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	query := r.URL.Query()

	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /plannings/{serviceId}/availability - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	var endDate *time.Time
	if raw := query.Get("endDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /plannings/{serviceId}/availability - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		endDate = &parsed
	}

	quantity := 0
	if raw := query.Get("quantity"); raw != "" {
		quantity, err = strconv.Atoi(raw)
		if err != nil || quantity <= 0 {
			h.logger.Warn("GET /plannings/{serviceId}/availability - Invalid quantity: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &checkRange.Request{
		ServiceID: serviceID,
		StartDate: startDate,
		EndDate:   endDate,
		Quantity:  quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkRange.ErrPlanningNotFound):
			h.logger.Warn("GET /plannings/{serviceId}/availability - Planning not found: service=%d", serviceID)
			handlers.RespondNotFound(w, msgPlanningNotFound)

		case errors.Is(err, checkRange.ErrInvalidInput):
			h.logger.Warn("GET /plannings/{serviceId}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /plannings/{serviceId}/availability - Failed: service=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
