package list_appointments

import (
	"time"

	"github.com/m04kA/college-appointments/internal/domain"
	"github.com/m04kA/college-appointments/internal/service/appointments/models"
	"github.com/m04kA/college-appointments/pkg/ptr"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Пустые параметры означают отсутствие фильтра
func ToServiceRequest(actor domain.Actor, statusStr, fromStr, toStr string, loc *time.Location) (*models.ListRequest, error) {
	req := &models.ListRequest{Actor: actor}

	if statusStr != "" {
		req.Status = ptr.Ptr(statusStr)
	}

	if fromStr != "" {
		from, err := domain.ParseDate(fromStr, loc)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := domain.ParseDate(toStr, loc)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	return req, nil
}
