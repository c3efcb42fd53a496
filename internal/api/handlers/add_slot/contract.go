package add_slot

import (
	"context"

	"github.com/m04kA/SMC-CapacityService/internal/service/planning/models"
)

type PlanningService interface {
	AddSlot(ctx context.Context, serviceID int64, req *models.AddSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
