package get_professor_schedule

import (
	"github.com/m04kA/college-appointments/internal/domain"
	getSchedule "github.com/m04kA/college-appointments/internal/usecase/get_professor_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ProfessorID   int64    `json:"professorId"`
	ProfessorName string   `json:"professorName"`
	Date          string   `json:"date"`
	WorkingHours  string   `json:"workingHours"`
	Bookable      bool     `json:"bookable"`
	Booked        []string `json:"booked"`
	Free          []string `json:"free"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	return &ScheduleResponse{
		ProfessorID:   resp.ProfessorID,
		ProfessorName: resp.ProfessorName,
		Date:          resp.Date.Format(domain.DateFormat),
		WorkingHours:  resp.WorkingHours.String(),
		Bookable:      resp.Bookable,
		Booked:        slotStrings(resp.Booked),
		Free:          slotStrings(resp.Free),
	}
}

func slotStrings(slots []domain.TimeSlot) []string {
	result := make([]string, 0, len(slots))
	for _, slot := range slots {
		result = append(result, slot.String())
	}
	return result
}
