package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/college-appointments/internal/domain"
	appointmentRepo "github.com/m04kA/college-appointments/internal/infra/storage/appointment"
	userRepo "github.com/m04kA/college-appointments/internal/infra/storage/user"
)

// Исходы записи для метрик
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// UseCase use case записи студента к преподавателю
type UseCase struct {
	appointmentRepo AppointmentRepository
	directory       ProfessorDirectory
	txManager       TransactionManager
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directory ProfessorDirectory,
	txManager TransactionManager,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		directory:       directory,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case записи
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("BookAppointment: student=%d, professor=%d, date=%s, slot=%q",
		req.StudentID, req.ProfessorID, req.Date.Format(domain.DateFormat), req.Slot)

	// 2. Получаем преподавателя
	professor, err := uc.directory.GetProfessor(ctx, req.ProfessorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("BookAppointment: professor id=%d not found", req.ProfessorID)
			return nil, ErrProfessorNotFound
		}
		uc.logger.Error("BookAppointment: failed to get professor id=%d: %v", req.ProfessorID, err)
		uc.observe(OutcomeError)
		return nil, fmt.Errorf("%w: failed to get professor: %v", ErrInternal, err)
	}

	if !professor.IsProfessor() {
		uc.logger.Warn("BookAppointment: user id=%d is not a professor", req.ProfessorID)
		return nil, ErrProfessorNotFound
	}

	if !professor.IsAvailableForAppointments {
		uc.logger.Warn("BookAppointment: professor id=%d is not available for appointments", req.ProfessorID)
		return nil, ErrProfessorUnavailable
	}

	workingHours := professor.EffectiveWorkingHours()
	now := uc.timeProvider.Now()

	var result *domain.Appointment

	// 3. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Активные записи преподавателя на дату (FOR UPDATE)
		existing, err := uc.appointmentRepo.ListActiveByProfessorAndDateForUpdate(txCtx, req.ProfessorID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to list appointments: %w", ErrInternal, err)
		}

		// 3.2. Проверка допустимости
		slot, rejection := Validate(req, workingHours, existing, now)
		if rejection != nil {
			return rejection
		}

		// 3.3. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ProfessorID: req.ProfessorID,
			StudentID:   req.StudentID,
			Date:        domain.DateOf(req.Date),
			Slot:        slot,
			Status:      domain.StatusPending,
		})
		if err != nil {
			// Ограничение исключения сработало на параллельной записи
			if errors.Is(err, appointmentRepo.ErrSlotConflict) {
				return rejectOverlap()
			}
			if errors.Is(err, appointmentRepo.ErrParticipantNotFound) {
				return ErrStudentNotFound
			}
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		var rejection *Rejection
		if errors.As(err, &rejection) {
			uc.logger.Info("BookAppointment: rejected student=%d professor=%d date=%s slot=%q: reason=%s",
				req.StudentID, req.ProfessorID, req.Date.Format(domain.DateFormat), req.Slot, rejection.Reason)
			uc.observe(OutcomeRejected)
			if uc.metrics != nil {
				uc.metrics.ObserveBookingRejection(string(rejection.Reason))
			}
			return nil, rejection
		}

		if errors.Is(err, ErrStudentNotFound) {
			uc.logger.Warn("BookAppointment: student id=%d not found", req.StudentID)
			return nil, ErrStudentNotFound
		}

		uc.logger.Error("BookAppointment: failed to book: %v", err)
		uc.observe(OutcomeError)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d", result.ID)
	uc.observe(OutcomeAccepted)

	return &Response{
		ID:          result.ID,
		ProfessorID: result.ProfessorID,
		StudentID:   result.StudentID,
		Date:        result.Date,
		Slot:        result.Slot,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(outcome)
	}
}
