package models

import (
	"github.com/m04kA/college-appointments/internal/domain"
)

// Request модели

// UpdateWorkingHoursRequest запрос на изменение рабочих часов
type UpdateWorkingHoursRequest struct {
	Actor domain.Actor
	Slot  string // "9:00AM-3:00PM"
}

// Response модели

// ProfessorResponse карточка преподавателя в справочнике
type ProfessorResponse struct {
	ID                         int64  `json:"id"`
	Name                       string `json:"name"`
	Email                      string `json:"email"`
	Department                 string `json:"department"`
	WorkingHours               string `json:"workingHours"`
	IsAvailableForAppointments bool   `json:"isAvailableForAppointments"`
}

// ProfessorListResponse ответ со списком преподавателей
type ProfessorListResponse struct {
	Professors []ProfessorResponse `json:"professors"`
}

// WorkingHoursResponse рабочие часы преподавателя
type WorkingHoursResponse struct {
	ProfessorID   int64  `json:"professorId"`
	ProfessorName string `json:"professorName"`
	Slot          string `json:"slot"`
}

// Методы конвертации

// FromDomainProfessor конвертирует domain модель в DTO
func FromDomainProfessor(u *domain.User) *ProfessorResponse {
	if u == nil {
		return nil
	}

	return &ProfessorResponse{
		ID:                         u.ID,
		Name:                       u.Name,
		Email:                      u.Email,
		Department:                 u.Department,
		WorkingHours:               u.EffectiveWorkingHours().String(),
		IsAvailableForAppointments: u.IsAvailableForAppointments,
	}
}

// FromDomainProfessorList конвертирует список domain моделей в DTO
func FromDomainProfessorList(users []*domain.User) *ProfessorListResponse {
	resp := &ProfessorListResponse{
		Professors: make([]ProfessorResponse, 0, len(users)),
	}

	for _, u := range users {
		if item := FromDomainProfessor(u); item != nil {
			resp.Professors = append(resp.Professors, *item)
		}
	}

	return resp
}

// FromDomainWorkingHours собирает ответ с рабочими часами
func FromDomainWorkingHours(u *domain.User) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		ProfessorID:   u.ID,
		ProfessorName: u.Name,
		Slot:          u.EffectiveWorkingHours().String(),
	}
}
