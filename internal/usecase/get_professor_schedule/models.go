package get_professor_schedule

import (
	"time"

	"github.com/m04kA/college-appointments/internal/domain"
)

// Request модель запроса расписания преподавателя на дату
type Request struct {
	ProfessorID int64
	Date        time.Time // Дата (без времени)
}

// Response расписание преподавателя на дату
type Response struct {
	ProfessorID   int64
	ProfessorName string
	Date          time.Time
	WorkingHours  domain.TimeSlot
	Bookable      bool              // false для прошедших дат, выходных и недоступных преподавателей
	Booked        []domain.TimeSlot // занятые интервалы по возрастанию начала
	Free          []domain.TimeSlot // рабочие часы за вычетом занятых
}
