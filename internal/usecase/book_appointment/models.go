package book_appointment

import (
	"time"

	"github.com/m04kA/college-appointments/internal/domain"
)

// Request модель запроса на запись к преподавателю
type Request struct {
	StudentID   int64     // ID студента (из токена)
	ProfessorID int64     // ID преподавателя
	Date        time.Time // Дата записи (без времени)
	Slot        string    // Интервал, например "10:00AM-11:00AM"
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64
	ProfessorID int64
	StudentID   int64
	Date        time.Time
	Slot        domain.TimeSlot
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
