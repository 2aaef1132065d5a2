package get_professor_schedule

import (
	"sort"

	"github.com/m04kA/college-appointments/internal/domain"
)

// bookedSlots возвращает интервалы активных записей, упорядоченные по началу
func bookedSlots(appointments []*domain.Appointment) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0, len(appointments))
	for _, appointment := range appointments {
		if !appointment.IsActive() {
			continue
		}
		result = append(result, appointment.Slot)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Start != result[j].Start {
			return result[i].Start < result[j].Start
		}
		return result[i].End < result[j].End
	})

	return result
}

// freeWindows вычитает занятые интервалы из рабочих часов
// booked должен быть упорядочен по началу; интервалы вне рабочих часов обрезаются
//
// Пример: часы 10:00AM-5:00PM, занято 11:00AM-12:00PM и 11:30AM-1:00PM
// → свободно 10:00AM-11:00AM и 1:00PM-5:00PM
func freeWindows(workingHours domain.TimeSlot, booked []domain.TimeSlot) []domain.TimeSlot {
	free := make([]domain.TimeSlot, 0)
	cursor := workingHours.Start

	for _, slot := range booked {
		if !slot.Overlaps(workingHours) {
			continue
		}
		if slot.Start > cursor {
			free = append(free, domain.TimeSlot{Start: cursor, End: slot.Start})
		}
		if slot.End > cursor {
			cursor = slot.End
		}
		if cursor >= workingHours.End {
			return free
		}
	}

	if cursor < workingHours.End {
		free = append(free, domain.TimeSlot{Start: cursor, End: workingHours.End})
	}

	return free
}
