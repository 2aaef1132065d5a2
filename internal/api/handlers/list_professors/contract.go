package list_professors

import (
	"context"

	"github.com/m04kA/college-appointments/internal/service/professors/models"
)

type ProfessorService interface {
	List(ctx context.Context) (*models.ProfessorListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
