package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/college-appointments/internal/domain"
	"github.com/m04kA/college-appointments/pkg/dbmetrics"
	"github.com/m04kA/college-appointments/pkg/psqlbuilder"
	"github.com/m04kA/college-appointments/pkg/types"
)

const table = "users"

var columns = []string{
	"id",
	"name",
	"email",
	"role",
	"department",
	"working_hours_start",
	"working_hours_end",
	"is_available_for_appointments",
	"created_at",
	"updated_at",
}

// Repository репозиторий пользователей (студенты и преподаватели)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	user, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %w", ErrScanRow, err)
	}

	return user, nil
}

// GetProfessor получает преподавателя по ID
// Пользователь с другой ролью считается ненайденным
func (r *Repository) GetProfessor(ctx context.Context, id int64) (*domain.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsProfessor() {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListProfessors получает преподавателей, упорядоченных по имени
// При onlyAvailable исключаются те, кто не принимает записи
func (r *Repository) ListProfessors(ctx context.Context, onlyAvailable bool) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"role": domain.RoleProfessor})

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available_for_appointments": true})
	}

	query, args, err := selectBuilder.OrderBy("name ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListProfessors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProfessors - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListProfessors - scan row: %w", ErrScanRow, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProfessors - rows error: %w", ErrScanRow, err)
	}

	return users, nil
}

// UpdateWorkingHours сохраняет рабочие часы преподавателя
func (r *Repository) UpdateWorkingHours(ctx context.Context, professorID int64, workingHours domain.TimeSlot) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("working_hours_start", workingHours.Start).
		Set("working_hours_end", workingHours.End).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": professorID, "role": domain.RoleProfessor}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateWorkingHours - build update query: %v", ErrBuildQuery, err)
	}

	user, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateWorkingHours - execute update: %w", ErrExecQuery, err)
	}

	return user, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var whStart, whEnd sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.Department,
		&whStart,
		&whEnd,
		&user.IsAvailableForAppointments,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Рабочие часы задаются только парой, иначе действуют значения по умолчанию
	if whStart.Valid && whEnd.Valid {
		slot, err := domain.NewTimeSlot(types.Clock(whStart.Int64), types.Clock(whEnd.Int64))
		if err == nil {
			user.WorkingHours = &slot
		}
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return &user, nil
}
