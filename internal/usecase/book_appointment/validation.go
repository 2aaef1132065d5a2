package book_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/college-appointments/internal/domain"
)

// RejectionReason машиночитаемая причина отказа в записи
type RejectionReason string

const (
	ReasonPastDate            RejectionReason = "PastDate"
	ReasonWeekend             RejectionReason = "Weekend"
	ReasonBadFormat           RejectionReason = "BadFormat"
	ReasonOutsideWorkingHours RejectionReason = "OutsideWorkingHours"
	ReasonOverlap             RejectionReason = "Overlap"
)

// Rejection отказ в записи: причина и сообщение для пользователя
type Rejection struct {
	Reason  RejectionReason
	Message string
}

// Error реализует error, возвращает сообщение для пользователя
func (r *Rejection) Error() string {
	return r.Message
}

func reject(reason RejectionReason, message string) *Rejection {
	return &Rejection{Reason: reason, Message: message}
}

func rejectOverlap() *Rejection {
	return reject(ReasonOverlap, "Time slot is already booked for this date")
}

// Validate проверяет допустимость записи. Первая неудачная проверка определяет результат:
// дата в прошлом, выходной, формат интервала, рабочие часы, пересечение.
// При успехе возвращает разобранный интервал и nil.
// Функция чистая: отменённые записи в existing игнорируются, входные данные не меняются.
func Validate(
	req *Request,
	workingHours domain.TimeSlot,
	existing []*domain.Appointment,
	now time.Time,
) (domain.TimeSlot, *Rejection) {
	if domain.IsPastDate(req.Date, now) {
		return domain.TimeSlot{}, reject(ReasonPastDate, "Appointment date must be today or in the future")
	}

	if domain.IsWeekend(req.Date) {
		return domain.TimeSlot{}, reject(ReasonWeekend, "Appointments are not available on weekends")
	}

	slot, err := domain.ParseTimeSlot(strings.TrimSpace(req.Slot))
	if err != nil {
		return domain.TimeSlot{}, reject(ReasonBadFormat, "Invalid time slot format")
	}

	if !workingHours.Contains(slot) {
		return domain.TimeSlot{}, reject(ReasonOutsideWorkingHours,
			fmt.Sprintf("Professor is only available between %s and %s", workingHours.Start, workingHours.End))
	}

	for _, appointment := range existing {
		if !appointment.IsActive() {
			continue
		}
		if slot.Overlaps(appointment.Slot) {
			return domain.TimeSlot{}, rejectOverlap()
		}
	}

	return slot, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.StudentID <= 0 {
		return fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
	}

	if req.ProfessorID <= 0 {
		return fmt.Errorf("%w: professorID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Slot) == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	return nil
}
