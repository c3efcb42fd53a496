package get_planning

import (
	"context"

	"github.com/m04kA/SMC-CapacityService/internal/service/planning/models"
)

type PlanningService interface {
	GetPlanning(ctx context.Context, serviceID int64) (*models.PlanningResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
