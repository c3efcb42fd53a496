package remove_slot

import (
	"context"
	"time"
)

type PlanningService interface {
	RemoveSlot(ctx context.Context, serviceID int64, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
