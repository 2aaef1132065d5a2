package get_professor_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/college-appointments/internal/domain"
	userRepo "github.com/m04kA/college-appointments/internal/infra/storage/user"
	"github.com/m04kA/college-appointments/pkg/logger"
)

// Среда 14 октября 2026
var testNow = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (r *fakeRepo) ListActiveByProfessorAndDate(context.Context, int64, time.Time) ([]*domain.Appointment, error) {
	return r.appointments, r.err
}

// fakeTxManager выполняет fn без настоящей транзакции
type fakeTxManager struct {
	calls int
	err   error
}

func (m *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type fakeDirectory struct {
	users map[int64]*domain.User
}

func (d *fakeDirectory) GetProfessor(_ context.Context, id int64) (*domain.User, error) {
	u, ok := d.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func newUseCase(t *testing.T, repo *fakeRepo) (*UseCase, *fakeDirectory) {
	t.Helper()
	directory := &fakeDirectory{users: map[int64]*domain.User{
		7: {ID: 7, Name: "Dr. Rao", Role: domain.RoleProfessor, IsAvailableForAppointments: true},
	}}
	return NewUseCase(repo, directory, &fakeTxManager{}, fixedTime{now: testNow}, logger.NewNop()), directory
}

func TestExecute(t *testing.T) {
	uc, _ := newUseCase(t, &fakeRepo{appointments: appointmentsAt(t, "1:00PM-2:00PM", "10:00AM-11:00AM")})

	resp, err := uc.Execute(context.Background(), &Request{ProfessorID: 7, Date: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)})

	require.NoError(t, err)
	assert.Equal(t, "Dr. Rao", resp.ProfessorName)
	assert.True(t, resp.Bookable)
	assert.Equal(t, "10:00AM-5:00PM", resp.WorkingHours.String())
	assert.Equal(t, []string{"10:00AM-11:00AM", "1:00PM-2:00PM"}, formatted(resp.Booked))
	assert.Equal(t, []string{"11:00AM-1:00PM", "2:00PM-5:00PM"}, formatted(resp.Free))
}

func TestExecute_NotBookable(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		available bool
	}{
		{"past date", time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC), true},
		{"saturday", time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), true},
		{"professor unavailable", time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, directory := newUseCase(t, &fakeRepo{})
			directory.users[7].IsAvailableForAppointments = tt.available

			resp, err := uc.Execute(context.Background(), &Request{ProfessorID: 7, Date: tt.date})

			require.NoError(t, err)
			assert.False(t, resp.Bookable)
		})
	}
}

func TestExecute_TodayIsBookable(t *testing.T) {
	uc, _ := newUseCase(t, &fakeRepo{})

	resp, err := uc.Execute(context.Background(), &Request{ProfessorID: 7, Date: time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)})

	require.NoError(t, err)
	assert.True(t, resp.Bookable)
}

func TestExecute_Errors(t *testing.T) {
	uc, _ := newUseCase(t, &fakeRepo{})

	_, err := uc.Execute(context.Background(), &Request{ProfessorID: 99, Date: testNow})
	assert.ErrorIs(t, err, ErrProfessorNotFound)

	_, err = uc.Execute(context.Background(), &Request{ProfessorID: 0, Date: testNow})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProfessorID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	failing, _ := newUseCase(t, &fakeRepo{err: errors.New("db down")})
	_, err = failing.Execute(context.Background(), &Request{ProfessorID: 7, Date: testNow})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ReadsInOneReadOnlyTransaction(t *testing.T) {
	tx := &fakeTxManager{}
	directory := &fakeDirectory{users: map[int64]*domain.User{
		7: {ID: 7, Name: "Dr. Rao", Role: domain.RoleProfessor, IsAvailableForAppointments: true},
	}}
	uc := NewUseCase(&fakeRepo{}, directory, tx, fixedTime{now: testNow}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{ProfessorID: 7, Date: testNow})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)

	tx.err = errors.New("could not begin transaction")
	_, err = uc.Execute(context.Background(), &Request{ProfessorID: 7, Date: testNow})
	assert.ErrorIs(t, err, ErrInternal)
}
