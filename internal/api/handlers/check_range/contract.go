package check_range

import (
	"context"

	checkRange "github.com/m04kA/SMC-CapacityService/internal/usecase/check_range"
)

type CheckRangeUseCase interface {
	Execute(ctx context.Context, req *checkRange.Request) (*checkRange.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
