package get_professor_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/college-appointments/internal/api/handlers"
	"github.com/m04kA/college-appointments/internal/domain"
	getSchedule "github.com/m04kA/college-appointments/internal/usecase/get_professor_schedule"
)

const (
	msgInvalidProfessorID = "invalid professor ID"
	msgInvalidDate        = "invalid or missing date, expected YYYY-MM-DD"
	msgNotFound           = "professor not found"
)

type Handler struct {
	useCase  GetProfessorScheduleUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetProfessorScheduleUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/professors/{professorId}/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID, err := strconv.ParseInt(mux.Vars(r)["professorId"], 10, 64)
	if err != nil || professorID <= 0 {
		h.logger.Warn("GET /professors/{id}/schedule - Invalid professor ID: %q", mux.Vars(r)["professorId"])
		handlers.RespondBadRequest(w, msgInvalidProfessorID)
		return
	}

	date, err := domain.ParseDate(r.URL.Query().Get("date"), h.location)
	if err != nil {
		h.logger.Warn("GET /professors/{id}/schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSchedule.Request{ProfessorID: professorID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrProfessorNotFound):
			h.logger.Warn("GET /professors/{id}/schedule - Professor not found: professor_id=%d", professorID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getSchedule.ErrInvalidInput):
			h.logger.Warn("GET /professors/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /professors/{id}/schedule - Failed to get schedule: professor_id=%d, error=%v",
				professorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professors/{id}/schedule - Schedule retrieved: professor_id=%d, date=%s, booked=%d",
		professorID, date.Format(domain.DateFormat), len(result.Booked))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
