package resolve_slot

import (
	"context"

	resolveSlot "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/resolve_slot"
)

type ResolveSlotUseCase interface {
	Execute(ctx context.Context, req *resolveSlot.Request) (*resolveSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
