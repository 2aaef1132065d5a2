package update_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/college-appointments/internal/api/handlers"
	"github.com/m04kA/college-appointments/internal/api/middleware"
	"github.com/m04kA/college-appointments/internal/service/professors"
)

const (
	msgInvalidProfessorID = "invalid professor ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSlot        = "invalid working hours, expected e.g. 9:00AM-3:00PM"
	msgMissingActor       = "missing user identity"
	msgForbidden          = "only the professor can change their working hours"
	msgNotFound           = "professor not found"
)

type Handler struct {
	service ProfessorService
	logger  Logger
}

func NewHandler(service ProfessorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/professors/{professorId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID, err := strconv.ParseInt(mux.Vars(r)["professorId"], 10, 64)
	if err != nil || professorID <= 0 {
		h.logger.Warn("PUT /professors/{id}/working-hours - Invalid professor ID: %q", mux.Vars(r)["professorId"])
		handlers.RespondBadRequest(w, msgInvalidProfessorID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /professors/{id}/working-hours - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req UpdateWorkingHoursRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /professors/{id}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWorkingHours(r.Context(), professorID, req.ToServiceRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, professors.ErrInvalidInput):
			h.logger.Warn("PUT /professors/{id}/working-hours - Invalid slot %q: %v", req.Slot, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, professors.ErrAccessDenied):
			h.logger.Warn("PUT /professors/{id}/working-hours - Access denied: professor_id=%d, user_id=%d",
				professorID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, professors.ErrProfessorNotFound):
			h.logger.Warn("PUT /professors/{id}/working-hours - Professor not found: professor_id=%d", professorID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /professors/{id}/working-hours - Failed to update working hours: professor_id=%d, error=%v",
				professorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professors/{id}/working-hours - Working hours updated: professor_id=%d, slot=%s",
		professorID, result.Slot)
	handlers.RespondJSON(w, http.StatusOK, result)
}
