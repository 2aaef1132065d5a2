package professor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/college-appointments/internal/domain"
)

const keyPrefix = "college-appointments:professor:"

// DefaultTTL время жизни записи кэша по умолчанию
const DefaultTTL = 5 * time.Minute

// RedisClient подмножество команд redis, используемых кэшем
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Source источник данных о преподавателях (репозиторий пользователей)
type Source interface {
	GetProfessor(ctx context.Context, professorID int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache read-through кэш справочника преподавателей
// Ошибки redis не прерывают запрос: данные читаются из источника
type Cache struct {
	client RedisClient
	source Source
	ttl    time.Duration
	logger Logger
}

// NewCache создает кэш поверх источника
func NewCache(client RedisClient, source Source, ttl time.Duration, logger Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, source: source, ttl: ttl, logger: logger}
}

type cachedProfessor struct {
	ID                         int64            `json:"id"`
	Name                       string           `json:"name"`
	Email                      string           `json:"email"`
	Role                       domain.Role      `json:"role"`
	Department                 string           `json:"department"`
	WorkingHours               *domain.TimeSlot `json:"workingHours,omitempty"`
	IsAvailableForAppointments bool             `json:"isAvailableForAppointments"`
	CreatedAt                  time.Time        `json:"createdAt"`
	UpdatedAt                  time.Time        `json:"updatedAt"`
}

// GetProfessor возвращает преподавателя из кэша, при промахе читает источник и кладёт результат в кэш
func (c *Cache) GetProfessor(ctx context.Context, professorID int64) (*domain.User, error) {
	key := cacheKey(professorID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedProfessor
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached.toDomain(), nil
		}
		c.logger.Warn("ProfessorCache: corrupted entry %s, reloading", key)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("ProfessorCache: get %s failed: %v", key, err)
	}

	user, err := c.source.GetProfessor(ctx, professorID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, user)
	return user, nil
}

// Invalidate удаляет запись о преподавателе из кэша
func (c *Cache) Invalidate(ctx context.Context, professorID int64) error {
	if err := c.client.Del(ctx, cacheKey(professorID)).Err(); err != nil {
		return fmt.Errorf("professor cache: invalidate %d: %w", professorID, err)
	}
	return nil
}

func (c *Cache) store(ctx context.Context, key string, user *domain.User) {
	data, err := json.Marshal(fromDomain(user))
	if err != nil {
		c.logger.Warn("ProfessorCache: marshal %s failed: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("ProfessorCache: set %s failed: %v", key, err)
	}
}

func cacheKey(professorID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, professorID)
}

func fromDomain(u *domain.User) cachedProfessor {
	return cachedProfessor{
		ID:                         u.ID,
		Name:                       u.Name,
		Email:                      u.Email,
		Role:                       u.Role,
		Department:                 u.Department,
		WorkingHours:               u.WorkingHours,
		IsAvailableForAppointments: u.IsAvailableForAppointments,
		CreatedAt:                  u.CreatedAt,
		UpdatedAt:                  u.UpdatedAt,
	}
}

func (c cachedProfessor) toDomain() *domain.User {
	return &domain.User{
		ID:                         c.ID,
		Name:                       c.Name,
		Email:                      c.Email,
		Role:                       c.Role,
		Department:                 c.Department,
		WorkingHours:               c.WorkingHours,
		IsAvailableForAppointments: c.IsAvailableForAppointments,
		CreatedAt:                  c.CreatedAt,
		UpdatedAt:                  c.UpdatedAt,
	}
}
