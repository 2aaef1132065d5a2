package book_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/college-appointments/internal/api/handlers"
	"github.com/m04kA/college-appointments/internal/api/middleware"
	bookAppointment "github.com/m04kA/college-appointments/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDate          = "invalid date format, expected YYYY-MM-DD"
	msgMissingActor         = "missing user identity"
	msgProfessorNotFound    = "professor not found"
	msgStudentNotFound      = "student not found"
	msgProfessorUnavailable = "professor is not available for appointments"
)

type Handler struct {
	useCase  BookAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase BookAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req BookAppointmentRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor.UserID, h.location)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejection *bookAppointment.Rejection
		switch {
		case errors.As(err, &rejection):
			h.logger.Info("POST /appointments - Rejected: student_id=%d, professor_id=%d, reason=%s",
				actor.UserID, req.ProfessorID, rejection.Reason)
			handlers.RespondBadRequest(w, rejection.Message)

		case errors.Is(err, bookAppointment.ErrProfessorNotFound):
			h.logger.Warn("POST /appointments - Professor not found: professor_id=%d", req.ProfessorID)
			handlers.RespondNotFound(w, msgProfessorNotFound)

		case errors.Is(err, bookAppointment.ErrStudentNotFound):
			h.logger.Warn("POST /appointments - Student not found: student_id=%d", actor.UserID)
			handlers.RespondNotFound(w, msgStudentNotFound)

		case errors.Is(err, bookAppointment.ErrProfessorUnavailable):
			h.logger.Warn("POST /appointments - Professor unavailable: professor_id=%d", req.ProfessorID)
			handlers.RespondConflict(w, msgProfessorUnavailable)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: student_id=%d, error=%v",
				actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, student_id=%d, professor_id=%d",
		result.ID, result.StudentID, result.ProfessorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
