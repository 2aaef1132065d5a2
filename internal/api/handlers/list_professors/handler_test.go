package list_professors

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/college-appointments/internal/service/professors/models"
	"github.com/m04kA/college-appointments/pkg/logger"
)

type fakeService struct {
	resp *models.ProfessorListResponse
	err  error
}

func (f *fakeService) List(context.Context) (*models.ProfessorListResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	svc := &fakeService{resp: &models.ProfessorListResponse{Professors: []models.ProfessorResponse{
		{ID: 7, Name: "Dr. Rao", WorkingHours: "10:00AM-5:00PM", IsAvailableForAppointments: true},
	}}}

	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/professors", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"professors":[{"id":7,"name":"Dr. Rao","email":"","department":"",
		"workingHours":"10:00AM-5:00PM","isAvailableForAppointments":true}]}`, w.Body.String())
}

func TestHandle_Error(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("db down")}, logger.NewNop()).
		Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/professors", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
