package get_working_hours

import (
	"context"

	"github.com/m04kA/college-appointments/internal/service/professors/models"
)

type ProfessorService interface {
	GetWorkingHours(ctx context.Context, professorID int64) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
