package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5/request"

	"github.com/m04kA/college-appointments/internal/api/handlers"
	"github.com/m04kA/college-appointments/internal/domain"
	"github.com/m04kA/college-appointments/internal/integrations/identityservice"
)

type contextKey string

const actorKey contextKey = "actor"

const (
	msgMissingToken        = "missing bearer token"
	msgInvalidToken        = "invalid or expired token"
	msgForbidden           = "access denied"
	msgIdentityUnavailable = "identity service unavailable"
)

// ActorResolver превращает bearer-токен в участника системы
type ActorResolver interface {
	Resolve(ctx context.Context, token string) (domain.Actor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Authorization: Bearer <token> и кладёт domain.Actor в контекст
func Auth(resolver ActorResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn("Auth - missing or malformed Authorization header: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			actor, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, identityservice.ErrServiceUnavailable) {
					logger.Error("Auth - identity service unavailable: %v", err)
					handlers.RespondError(w, http.StatusServiceUnavailable, msgIdentityUnavailable)
					return
				}
				logger.Warn("Auth - token rejected: %v", err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// RequireRole пропускает только участников с указанной ролью
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := GetActor(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			if actor.Role != role {
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithActor кладёт участника в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor извлекает участника из контекста
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}

func bearerToken(r *http.Request) (string, bool) {
	token, err := request.BearerExtractor{}.ExtractToken(r)
	if err != nil {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
