package get_professor_schedule

import (
	"context"

	getSchedule "github.com/m04kA/college-appointments/internal/usecase/get_professor_schedule"
)

type GetProfessorScheduleUseCase interface {
	Execute(ctx context.Context, req *getSchedule.Request) (*getSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
