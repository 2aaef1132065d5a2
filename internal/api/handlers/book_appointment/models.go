package book_appointment

import (
	"time"

	"github.com/m04kA/college-appointments/internal/domain"
	bookAppointment "github.com/m04kA/college-appointments/internal/usecase/book_appointment"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	ProfessorID int64  `json:"professorId" validate:"required,gt=0"`
	Date        string `json:"date" validate:"required"` // "2026-10-19"
	Slot        string `json:"slot" validate:"required"` // "10:00AM-11:00AM"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64     `json:"id"`
	ProfessorID int64     `json:"professorId"`
	StudentID   int64     `json:"studentId"`
	Date        string    `json:"date"`
	Slot        string    `json:"slot"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата трактуется как календарный день в часовом поясе записи
func (r *BookAppointmentRequest) ToUseCaseRequest(studentID int64, loc *time.Location) (*bookAppointment.Request, error) {
	date, err := domain.ParseDate(r.Date, loc)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		StudentID:   studentID,
		ProfessorID: r.ProfessorID,
		Date:        date,
		Slot:        r.Slot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		ProfessorID: resp.ProfessorID,
		StudentID:   resp.StudentID,
		Date:        resp.Date.Format(domain.DateFormat),
		Slot:        resp.Slot.String(),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}
