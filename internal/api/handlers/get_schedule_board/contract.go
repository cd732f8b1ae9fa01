package get_schedule_board

import (
	"context"

	getScheduleBoard "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/get_schedule_board"
)

type GetScheduleBoardUseCase interface {
	Execute(ctx context.Context, req *getScheduleBoard.Request) (*getScheduleBoard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
