package reserve_range

import (
	"context"

	reserveRange "github.com/m04kA/SMC-CapacityService/internal/usecase/reserve_range"
)

type ReserveRangeUseCase interface {
	Execute(ctx context.Context, req *reserveRange.Request) (*reserveRange.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
