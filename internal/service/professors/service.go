package professors

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/college-appointments/internal/domain"
	userRepo "github.com/m04kA/college-appointments/internal/infra/storage/user"
	"github.com/m04kA/college-appointments/internal/service/professors/models"
)

// Service сервис справочника преподавателей
type Service struct {
	repo        ProfessorRepository
	directory   ProfessorDirectory
	invalidator CacheInvalidator
	logger      Logger
}

// NewService создает новый экземпляр сервиса преподавателей
// invalidator может быть nil, если кэш выключен
func NewService(
	repo ProfessorRepository,
	directory ProfessorDirectory,
	invalidator CacheInvalidator,
	logger Logger,
) *Service {
	return &Service{
		repo:        repo,
		directory:   directory,
		invalidator: invalidator,
		logger:      logger,
	}
}

// List получает преподавателей, принимающих записи
func (s *Service) List(ctx context.Context) (*models.ProfessorListResponse, error) {
	s.logger.Info("List: fetching professors")

	professors, err := s.repo.ListProfessors(ctx, true)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d professors", len(professors))
	return models.FromDomainProfessorList(professors), nil
}

// GetWorkingHours получает рабочие часы преподавателя
// Если часы не заданы, возвращаются часы по умолчанию
func (s *Service) GetWorkingHours(ctx context.Context, professorID int64) (*models.WorkingHoursResponse, error) {
	s.logger.Info("GetWorkingHours: fetching working hours for professor=%d", professorID)

	professor, err := s.directory.GetProfessor(ctx, professorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetWorkingHours: professor id=%d not found", professorID)
			return nil, ErrProfessorNotFound
		}
		s.logger.Error("GetWorkingHours: directory error for professor id=%d: %v", professorID, err)
		return nil, fmt.Errorf("%w: GetWorkingHours - directory error: %v", ErrInternal, err)
	}

	return models.FromDomainWorkingHours(professor), nil
}

// UpdateWorkingHours изменяет рабочие часы
// Преподаватель может изменить только свои часы
func (s *Service) UpdateWorkingHours(ctx context.Context, professorID int64, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("UpdateWorkingHours: professor=%d slot=%q by user=%d", professorID, req.Slot, req.Actor.UserID)

	if !req.Actor.IsProfessor() || req.Actor.UserID != professorID {
		s.logger.Warn("UpdateWorkingHours: user=%d role=%s cannot change hours of professor=%d",
			req.Actor.UserID, req.Actor.Role, professorID)
		return nil, ErrAccessDenied
	}

	workingHours, err := domain.ParseTimeSlot(req.Slot)
	if err != nil {
		s.logger.Warn("UpdateWorkingHours: invalid slot %q: %v", req.Slot, err)
		return nil, fmt.Errorf("%w: invalid time slot format", ErrInvalidInput)
	}

	professor, err := s.repo.UpdateWorkingHours(ctx, professorID, workingHours)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdateWorkingHours: professor id=%d not found", professorID)
			return nil, ErrProfessorNotFound
		}
		s.logger.Error("UpdateWorkingHours: repository error for professor id=%d: %v", professorID, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, professorID); err != nil {
			s.logger.Warn("UpdateWorkingHours: cache invalidation failed for professor id=%d: %v", professorID, err)
		}
	}

	s.logger.Info("UpdateWorkingHours: professor id=%d now available %s", professorID, workingHours)
	return models.FromDomainWorkingHours(professor), nil
}
