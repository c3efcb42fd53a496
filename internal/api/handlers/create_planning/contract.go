package create_planning

import (
	"context"

	"github.com/m04kA/SMC-CapacityService/internal/service/planning/models"
)

type PlanningService interface {
	CreatePlanning(ctx context.Context, req *models.CreatePlanningRequest) (*models.PlanningResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
