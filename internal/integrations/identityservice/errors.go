package identityservice

import "errors"

var (
	// ErrUnauthorized возвращается, когда сервис идентификации не признал токен
	ErrUnauthorized = errors.New("identityservice client: token rejected")

	// ErrServiceUnavailable возвращается, когда сервис идентификации недоступен
	ErrServiceUnavailable = errors.New("identityservice client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identityservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identityservice client: invalid response")
)
