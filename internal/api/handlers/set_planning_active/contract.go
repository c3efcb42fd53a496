package set_planning_active

import "context"

type PlanningService interface {
	SetActive(ctx context.Context, serviceID int64, active bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
