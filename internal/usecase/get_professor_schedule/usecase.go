package get_professor_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/college-appointments/internal/domain"
	userRepo "github.com/m04kA/college-appointments/internal/infra/storage/user"
)

// UseCase use case для получения расписания преподавателя на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	directory       ProfessorDirectory
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directory ProfessorDirectory,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		directory:       directory,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case получения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ProfessorID <= 0 {
		return nil, fmt.Errorf("%w: professorID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	uc.logger.Info("GetProfessorSchedule: professor=%d, date=%s", req.ProfessorID, req.Date.Format(domain.DateFormat))

	var (
		professor    *domain.User
		appointments []*domain.Appointment
	)

	// Преподаватель и записи читаются из одного снимка
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		professor, err = uc.directory.GetProfessor(txCtx, req.ProfessorID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return ErrProfessorNotFound
			}
			return fmt.Errorf("%w: failed to get professor: %v", ErrInternal, err)
		}

		if !professor.IsProfessor() {
			return ErrProfessorNotFound
		}

		appointments, err = uc.appointmentRepo.ListActiveByProfessorAndDate(txCtx, req.ProfessorID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrProfessorNotFound) {
			uc.logger.Warn("GetProfessorSchedule: professor id=%d not found", req.ProfessorID)
			return nil, ErrProfessorNotFound
		}
		uc.logger.Error("GetProfessorSchedule: failed to read schedule of professor id=%d: %v", req.ProfessorID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	workingHours := professor.EffectiveWorkingHours()
	booked := bookedSlots(appointments)

	return &Response{
		ProfessorID:   professor.ID,
		ProfessorName: professor.Name,
		Date:          domain.DateOf(req.Date),
		WorkingHours:  workingHours,
		Bookable:      professor.IsAvailableForAppointments && isBookableDate(req.Date, uc.timeProvider.Now()),
		Booked:        booked,
		Free:          freeWindows(workingHours, booked),
	}, nil
}

// isBookableDate дата не в прошлом и не выходной
func isBookableDate(date, now time.Time) bool {
	return !domain.IsWeekend(date) && !domain.IsPastDate(date, now)
}
