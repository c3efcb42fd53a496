package update_slot_capacity

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/service/planning/models"
)

type PlanningService interface {
	UpdateSlotCapacity(ctx context.Context, serviceID int64, date time.Time, newMax int) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
