package professor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/college-appointments/internal/domain"
	userRepo "github.com/m04kA/college-appointments/internal/infra/storage/user"
	"github.com/m04kA/college-appointments/pkg/logger"
	"github.com/m04kA/college-appointments/pkg/types"
)

// memoryRedis реализация RedisClient в памяти
type memoryRedis struct {
	mu     sync.Mutex
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryRedis) Get(_ context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return redis.NewStringResult("", m.getErr)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (m *memoryRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value.([]byte)
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *memoryRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

type countingSource struct {
	users map[int64]*domain.User
	calls int
}

func (s *countingSource) GetProfessor(_ context.Context, id int64) (*domain.User, error) {
	s.calls++
	u, ok := s.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func newSource() *countingSource {
	wh := domain.TimeSlot{Start: types.MustClock(9, 0), End: types.MustClock(13, 0)}
	return &countingSource{users: map[int64]*domain.User{
		7: {ID: 7, Name: "Dr. Rao", Role: domain.RoleProfessor, WorkingHours: &wh, IsAvailableForAppointments: true},
	}}
}

func TestGetProfessor_ReadThrough(t *testing.T) {
	rdb := newMemoryRedis()
	source := newSource()
	cache := NewCache(rdb, source, time.Minute, logger.NewNop())

	first, err := cache.GetProfessor(context.Background(), 7)
	require.NoError(t, err)
	second, err := cache.GetProfessor(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, "9:00AM-1:00PM", second.WorkingHours.String())
	assert.Equal(t, time.Minute, rdb.ttls[cacheKey(7)])
}

func TestGetProfessor_Invalidate(t *testing.T) {
	rdb := newMemoryRedis()
	source := newSource()
	cache := NewCache(rdb, source, 0, logger.NewNop())

	_, err := cache.GetProfessor(context.Background(), 7)
	require.NoError(t, err)
	require.NoError(t, cache.Invalidate(context.Background(), 7))
	_, err = cache.GetProfessor(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls)
	assert.Equal(t, DefaultTTL, rdb.ttls[cacheKey(7)])
}

func TestGetProfessor_RedisDownFallsBackToSource(t *testing.T) {
	rdb := newMemoryRedis()
	rdb.getErr = errors.New("dial tcp: connection refused")
	source := newSource()
	cache := NewCache(rdb, source, time.Minute, logger.NewNop())

	u, err := cache.GetProfessor(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Dr. Rao", u.Name)
	assert.Equal(t, 1, source.calls)
}

func TestGetProfessor_NotFoundIsNotCached(t *testing.T) {
	rdb := newMemoryRedis()
	cache := NewCache(rdb, newSource(), time.Minute, logger.NewNop())

	_, err := cache.GetProfessor(context.Background(), 99)

	assert.ErrorIs(t, err, userRepo.ErrUserNotFound)
	assert.Empty(t, rdb.data)
}

func TestGetProfessor_CorruptedEntryIsReloaded(t *testing.T) {
	rdb := newMemoryRedis()
	rdb.data[cacheKey(7)] = []byte("{not json")
	source := newSource()
	cache := NewCache(rdb, source, time.Minute, logger.NewNop())

	u, err := cache.GetProfessor(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, 1, source.calls)
}
