package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotConflict возвращается, когда интервал пересекается с активной записью (ограничение исключения)
	ErrSlotConflict = errors.New("appointment.repository: time slot conflicts with an existing appointment")

	// ErrParticipantNotFound возвращается, когда преподаватель или студент записи отсутствует в users (внешний ключ)
	ErrParticipantNotFound = errors.New("appointment.repository: appointment participant not found")

	// ErrStatusChanged возвращается, когда статус записи изменился между чтением и обновлением
	ErrStatusChanged = errors.New("appointment.repository: appointment status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
