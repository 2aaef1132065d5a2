package update_working_hours

import (
	"github.com/m04kA/college-appointments/internal/domain"
	"github.com/m04kA/college-appointments/internal/service/professors/models"
)

// UpdateWorkingHoursRequest HTTP request model
type UpdateWorkingHoursRequest struct {
	Slot string `json:"slot" validate:"required"` // "9:00AM-3:00PM"
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateWorkingHoursRequest) ToServiceRequest(actor domain.Actor) *models.UpdateWorkingHoursRequest {
	return &models.UpdateWorkingHoursRequest{
		Actor: actor,
		Slot:  r.Slot,
	}
}
