package get_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/college-appointments/internal/api/handlers"
	"github.com/m04kA/college-appointments/internal/service/professors"
)

const (
	msgInvalidProfessorID = "invalid professor ID"
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

// Handle GET /api/v1/professors/{professorId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID, err := strconv.ParseInt(mux.Vars(r)["professorId"], 10, 64)
	if err != nil || professorID <= 0 {
		h.logger.Warn("GET /professors/{id}/working-hours - Invalid professor ID: %q", mux.Vars(r)["professorId"])
		handlers.RespondBadRequest(w, msgInvalidProfessorID)
		return
	}

	result, err := h.service.GetWorkingHours(r.Context(), professorID)
	if err != nil {
		if errors.Is(err, professors.ErrProfessorNotFound) {
			h.logger.Warn("GET /professors/{id}/working-hours - Professor not found: professor_id=%d", professorID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /professors/{id}/working-hours - Failed to get working hours: professor_id=%d, error=%v",
			professorID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
