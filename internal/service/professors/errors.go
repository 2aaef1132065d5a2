package professors

import "errors"

var (
	// ErrProfessorNotFound возвращается, когда преподаватель не найден
	ErrProfessorNotFound = errors.New("professor not found")

	// ErrAccessDenied возвращается, когда преподаватель меняет чужие рабочие часы
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
