package get_month_slots

import (
	"context"

	"github.com/m04kA/SMC-CapacityService/internal/service/planning/models"
)

type PlanningService interface {
	GetMonthWindow(ctx context.Context, req *models.MonthWindowRequest) (*models.MonthWindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
