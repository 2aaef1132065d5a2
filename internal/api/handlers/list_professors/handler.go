package list_professors

import (
	"net/http"

	"github.com/m04kA/college-appointments/internal/api/handlers"
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

// Handle GET /api/v1/professors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /professors - Failed to list professors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /professors - Professors retrieved: count=%d", len(result.Professors))
	handlers.RespondJSON(w, http.StatusOK, result)
}
