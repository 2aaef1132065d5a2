package domain

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusCompleted AppointmentStatus = "completed"
)

// IsValid reports whether s is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

// Appointment represents a booked time slot of a student with a professor
type Appointment struct {
	ID          int64
	ProfessorID int64
	StudentID   int64
	Date        time.Time // calendar date, time of day is ignored
	Slot        TimeSlot
	Status      AppointmentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCanceled
}

// IsParticipant returns true if the actor is the student or the professor of record
func (a *Appointment) IsParticipant(actor Actor) bool {
	switch actor.Role {
	case RoleStudent:
		return a.StudentID == actor.UserID
	case RoleProfessor:
		return a.ProfessorID == actor.UserID
	}
	return false
}

// AppointmentsFilter is the filter for listing appointments of one participant
type AppointmentsFilter struct {
	StudentID   *int64             // set for a student listing
	ProfessorID *int64             // set for a professor listing
	Status      *AppointmentStatus // optional
	From        *time.Time         // inclusive, optional
	To          *time.Time         // inclusive, optional
}
