package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/college-appointments/internal/domain"
	appointmentRepo "github.com/m04kA/college-appointments/internal/infra/storage/appointment"
	"github.com/m04kA/college-appointments/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Доступно только участникам записи
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, actor.UserID)

	appointment, err := s.load(ctx, "GetByID", id, actor)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appointment), nil
}

// List получает записи участника
// Опционально фильтрует по статусу и периоду
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for user=%d role=%s", req.Actor.UserID, req.Actor.Role)

	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		s.logger.Warn("List: invalid period for user=%d", req.Actor.UserID)
		return nil, fmt.Errorf("%w: 'from' must not be after 'to'", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for user=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for user=%d", len(appointments), req.Actor.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus переводит запись в новый статус
// Сначала проверяется участие, затем таблица допустимых переходов для роли
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d to status=%s by user=%d", id, req.Status, req.Actor.UserID)

	target, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointment, err := s.load(ctx, "UpdateStatus", id, req.Actor)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(appointment.Status, target, req.Actor.Role) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for %s, appointment id=%d",
			appointment.Status, target, req.Actor.Role, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, target)
	}

	updated, err := s.appointmentRepo.UpdateStatus(ctx, id, appointment.Status, target)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrStatusChanged) {
			s.logger.Warn("UpdateStatus: appointment id=%d changed concurrently", id)
			return nil, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d moved %s -> %s", id, appointment.Status, target)
	return models.FromDomainAppointment(updated), nil
}

// Cancel отменяет запись
func (s *Service) Cancel(ctx context.Context, id int64, actor domain.Actor) (*models.AppointmentResponse, error) {
	return s.UpdateStatus(ctx, id, &models.UpdateStatusRequest{
		Actor:  actor,
		Status: string(domain.StatusCanceled),
	})
}

// load получает запись и проверяет, что actor её участник
func (s *Service) load(ctx context.Context, op string, id int64, actor domain.Actor) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !appointment.IsParticipant(actor) {
		s.logger.Warn("%s: access denied for user=%d to appointment id=%d", op, actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return appointment, nil
}
