package models

import (
	"errors"
	"time"

	"github.com/m04kA/college-appointments/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Actor  domain.Actor
	Status string
}

// ListRequest запрос на получение записей участника
type ListRequest struct {
	Actor  domain.Actor
	Status *string    // Фильтр по статусу (опционально)
	From   *time.Time // Начало периода включительно (опционально)
	To     *time.Time // Конец периода включительно (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
// Студент видит записи, где он студент, преподаватель - где он преподаватель
func (r *ListRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		From: r.From,
		To:   r.To,
	}

	userID := r.Actor.UserID
	if r.Actor.IsProfessor() {
		filter.ProfessorID = &userID
	} else {
		filter.StudentID = &userID
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID          int64     `json:"id"`
	ProfessorID int64     `json:"professorId"`
	StudentID   int64     `json:"studentId"`
	Date        string    `json:"date"` // "2026-10-19"
	Slot        string    `json:"slot"` // "10:00AM-11:00AM"
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:          a.ID,
		ProfessorID: a.ProfessorID,
		StudentID:   a.StudentID,
		Date:        a.Date.Format(domain.DateFormat),
		Slot:        a.Slot.String(),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appointment := range appointments {
		if item := FromDomainAppointment(appointment); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
