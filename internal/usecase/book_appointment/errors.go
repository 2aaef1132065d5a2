package book_appointment

import "errors"

var (
	// ErrProfessorNotFound возвращается, когда преподаватель не найден
	ErrProfessorNotFound = errors.New("book_appointment: professor not found")

	// ErrStudentNotFound возвращается, когда студент отсутствует в справочнике пользователей
	ErrStudentNotFound = errors.New("book_appointment: student not found")

	// ErrProfessorUnavailable возвращается, когда преподаватель не принимает записи
	ErrProfessorUnavailable = errors.New("book_appointment: professor is not available for appointments")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
