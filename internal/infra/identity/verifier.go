package identity

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/college-appointments/internal/domain"
)

// Claims полезная нагрузка токена доступа
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier проверяет HS256 токены, выпущенные сервисом аутентификации
type Verifier struct {
	secret   []byte
	issuer   string
	audience string
	leeway   time.Duration
}

// Option настройка верификатора
type Option func(*Verifier)

// WithIssuer требует совпадения iss
func WithIssuer(issuer string) Option {
	return func(v *Verifier) { v.issuer = issuer }
}

// WithAudience требует наличия aud
func WithAudience(audience string) Option {
	return func(v *Verifier) { v.audience = audience }
}

// WithLeeway допуск расхождения часов при проверке exp/nbf
func WithLeeway(leeway time.Duration) Option {
	return func(v *Verifier) { v.leeway = leeway }
}

// NewVerifier создает верификатор с общим секретом
func NewVerifier(secret string, opts ...Option) *Verifier {
	v := &Verifier{secret: []byte(secret)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Resolve проверяет токен и возвращает субъекта запроса
func (v *Verifier) Resolve(_ context.Context, token string) (domain.Actor, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(v.audience))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, parserOpts...)
	if err != nil || !parsed.Valid {
		return domain.Actor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return domain.Actor{}, fmt.Errorf("%w: subject %q", ErrInvalidClaims, claims.Subject)
	}

	role := domain.Role(claims.Role)
	if !role.IsValid() {
		return domain.Actor{}, fmt.Errorf("%w: role %q", ErrInvalidClaims, claims.Role)
	}

	return domain.Actor{UserID: userID, Role: role}, nil
}
