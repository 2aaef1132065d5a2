package professors

import (
	"context"

	"github.com/m04kA/college-appointments/internal/domain"
)

// ProfessorRepository интерфейс репозитория пользователей
type ProfessorRepository interface {
	ListProfessors(ctx context.Context, onlyAvailable bool) ([]*domain.User, error)
	UpdateWorkingHours(ctx context.Context, professorID int64, workingHours domain.TimeSlot) (*domain.User, error)
}

// ProfessorDirectory чтение преподавателя (репозиторий или кэш поверх него)
type ProfessorDirectory interface {
	GetProfessor(ctx context.Context, professorID int64) (*domain.User, error)
}

// CacheInvalidator сброс кэша справочника после изменения
type CacheInvalidator interface {
	Invalidate(ctx context.Context, professorID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
