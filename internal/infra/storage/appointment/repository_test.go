package appointment

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/college-appointments/internal/domain"
	"github.com/m04kA/college-appointments/pkg/dbmetrics"
	"github.com/m04kA/college-appointments/pkg/ptr"
	"github.com/m04kA/college-appointments/pkg/types"
)

var (
	testDate = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	testTime = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
)

func newRepo(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db), db, mock
}

func appointmentRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestCreate(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments (professor_id,student_id,appointment_date,start_minute,end_minute,status) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at, updated_at")).
		WithArgs(int64(7), int64(3), "2026-10-19", int64(600), int64(660), "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), testTime, testTime))

	created, err := repo.Create(context.Background(), &domain.Appointment{
		ProfessorID: 7,
		StudentID:   3,
		Date:        testDate,
		Slot:        domain.TimeSlot{Start: types.MustClock(10, 0), End: types.MustClock(11, 0)},
		Status:      domain.StatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, testTime, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExclusionViolationIsSlotConflict(t *testing.T) {
	for _, code := range []pq.ErrorCode{pgExclusionViolation, pgUniqueViolation} {
		t.Run(string(code), func(t *testing.T) {
			repo, _, mock := newRepo(t)

			mock.ExpectQuery("INSERT INTO appointments").
				WillReturnError(&pq.Error{Code: code, Constraint: "appointments_no_overlap"})

			_, err := repo.Create(context.Background(), &domain.Appointment{
				ProfessorID: 7,
				StudentID:   3,
				Date:        testDate,
				Slot:        domain.TimeSlot{Start: types.MustClock(10, 0), End: types.MustClock(11, 0)},
				Status:      domain.StatusPending,
			})

			assert.ErrorIs(t, err, ErrSlotConflict)
		})
	}
}

func TestCreate_ForeignKeyViolationIsParticipantNotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: pgForeignKeyViolation, Constraint: "appointments_student_id_fkey"})

	_, err := repo.Create(context.Background(), &domain.Appointment{
		ProfessorID: 7,
		StudentID:   999,
		Date:        testDate,
		Slot:        domain.TimeSlot{Start: types.MustClock(10, 0), End: types.MustClock(11, 0)},
		Status:      domain.StatusPending,
	})

	assert.ErrorIs(t, err, ErrParticipantNotFound)
	assert.NotErrorIs(t, err, ErrExecQuery)
}

func TestCreate_OtherErrorKeepsDriverError(t *testing.T) {
	repo, _, mock := newRepo(t)
	driverErr := &pq.Error{Code: "40001"}

	mock.ExpectQuery("INSERT INTO appointments").WillReturnError(driverErr)

	_, err := repo.Create(context.Background(), &domain.Appointment{
		Date: testDate,
		Slot: domain.TimeSlot{Start: types.MustClock(10, 0), End: types.MustClock(11, 0)},
	})

	assert.ErrorIs(t, err, ErrExecQuery)
	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestGetByID(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, professor_id, student_id, appointment_date, start_minute, end_minute, status, created_at, updated_at FROM appointments WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(appointmentRows().AddRow(int64(42), int64(7), int64(3), testDate, int64(600), int64(660), "confirmed", testTime, testTime))

	got, err := repo.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ProfessorID)
	assert.Equal(t, "10:00AM-11:00AM", got.Slot.String())
	assert.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM appointments").WillReturnRows(appointmentRows())

	_, err := repo.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListActiveByProfessorAndDate(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE professor_id = $1 AND appointment_date = $2 AND status <> $3 ORDER BY start_minute ASC")).
		WithArgs(int64(7), "2026-10-19", "canceled").
		WillReturnRows(appointmentRows().
			AddRow(int64(1), int64(7), int64(3), testDate, int64(600), int64(660), "pending", testTime, testTime).
			AddRow(int64(2), int64(7), int64(4), testDate, int64(720), int64(780), "confirmed", testTime, testTime))

	items, err := repo.ListActiveByProfessorAndDate(context.Background(), 7, testDate)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "12:00PM-1:00PM", items[1].Slot.String())
}

func TestListActiveByProfessorAndDate_NoLockInTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`ORDER BY start_minute ASC$`).WillReturnRows(appointmentRows())
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	items, err := repo.ListActiveByProfessorAndDate(ctx, 7, testDate)
	require.NoError(t, err)
	assert.Empty(t, items)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveByProfessorAndDateForUpdate_Locks(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE professor_id = $1 AND appointment_date = $2 AND status <> $3 ORDER BY start_minute ASC FOR UPDATE")).
		WithArgs(int64(7), "2026-10-19", "canceled").
		WillReturnRows(appointmentRows().
			AddRow(int64(1), int64(7), int64(3), testDate, int64(600), int64(660), "pending", testTime, testTime))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	items, err := repo.ListActiveByProfessorAndDateForUpdate(ctx, 7, testDate)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_StudentWithFilters(t *testing.T) {
	repo, _, mock := newRepo(t)
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE student_id = $1 AND status = $2 AND appointment_date >= $3 AND appointment_date <= $4 ORDER BY appointment_date ASC, start_minute ASC")).
		WithArgs(int64(3), "pending", "2026-10-01", "2026-10-31").
		WillReturnRows(appointmentRows().
			AddRow(int64(1), int64(7), int64(3), testDate, int64(600), int64(660), "pending", testTime, testTime))

	status := domain.StatusPending
	items, err := repo.List(context.Background(), domain.AppointmentsFilter{
		StudentID: ptr.Ptr(int64(3)),
		Status:    &status,
		From:      &from,
		To:        &to,
	})

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestList_Professor(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE professor_id = $1 ORDER BY")).
		WithArgs(int64(7)).
		WillReturnRows(appointmentRows())

	items, err := repo.List(context.Background(), domain.AppointmentsFilter{ProfessorID: ptr.Ptr(int64(7))})

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestUpdateStatus(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3 RETURNING")).
		WithArgs("confirmed", int64(42), "pending").
		WillReturnRows(appointmentRows().
			AddRow(int64(42), int64(7), int64(3), testDate, int64(600), int64(660), "confirmed", testTime, testTime))

	got, err := repo.UpdateStatus(context.Background(), 42, domain.StatusPending, domain.StatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestUpdateStatus_ConcurrentChange(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("UPDATE appointments").WillReturnRows(appointmentRows())

	_, err := repo.UpdateStatus(context.Background(), 42, domain.StatusPending, domain.StatusConfirmed)

	assert.ErrorIs(t, err, ErrStatusChanged)
}
