package identityservice

// Subject ответ сервиса идентификации о владельце токена
type Subject struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// ErrorResponse модель ошибки от сервиса идентификации
type ErrorResponse struct {
	Message string `json:"message"`
}
