package get_professor_schedule

import (
	"context"
	"time"

	"github.com/m04kA/college-appointments/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListActiveByProfessorAndDate получает неотменённые записи преподавателя на дату
	ListActiveByProfessorAndDate(ctx context.Context, professorID int64, date time.Time) ([]*domain.Appointment, error)
}

// ProfessorDirectory справочник преподавателей
type ProfessorDirectory interface {
	GetProfessor(ctx context.Context, professorID int64) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
