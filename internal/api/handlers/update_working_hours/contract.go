package update_working_hours

import (
	"context"

	"github.com/m04kA/college-appointments/internal/service/professors/models"
)

type ProfessorService interface {
	UpdateWorkingHours(ctx context.Context, professorID int64, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
