package identity

import "errors"

var (
	// ErrInvalidToken возвращается, когда токен не прошёл проверку подписи или срока действия
	ErrInvalidToken = errors.New("identity: invalid token")

	// ErrInvalidClaims возвращается, когда в токене нет пользователя или роли
	ErrInvalidClaims = errors.New("identity: invalid token claims")
)
