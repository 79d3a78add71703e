package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gameforge/internal/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultLockTTL      = 5 * time.Minute
	defaultPollInterval = 50 * time.Millisecond
	lockKeyPrefix       = "gameforge:lock:game:"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a GameLocker shared by every server instance using the same Redis.
type RedisLocker struct {
	client       redis.UniversalClient
	ttl          time.Duration
	pollInterval time.Duration
	logger       *zap.Logger
}

var _ interfaces.GameLocker = (*RedisLocker)(nil)

// NewRedisLocker creates a locker. A zero ttl uses five minutes; the TTL must
// outlive the slowest generator call made while the lock is held.
func NewRedisLocker(client redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisLocker{
		client:       client,
		ttl:          ttl,
		pollInterval: defaultPollInterval,
		logger:       logger.Named("RedisLocker"),
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, gameID uuid.UUID) (func(), error) {
	key := lockKeyPrefix + gameID.String()
	token := uuid.NewString()

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			l.logger.Error("Failed to acquire game lock", zap.Stringer("gameID", gameID), zap.Error(err))
			return nil, fmt.Errorf("failed to acquire game lock: %w", err)
		}
		if ok {
			l.logger.Debug("Game lock acquired", zap.Stringer("gameID", gameID))
			return l.releaseFunc(key, token, gameID), nil
		}

		select {
		case <-ctx.Done():
			l.logger.Warn("Gave up waiting for game lock", zap.Stringer("gameID", gameID), zap.Error(ctx.Err()))
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) releaseFunc(key, token string, gameID uuid.UUID) func() {
	var once sync.Once
	return func() {
		once.Do(func() { l.release(key, token, gameID) })
	}
}

func (l *RedisLocker) release(key, token string, gameID uuid.UUID) {
	// The caller's context may already be cancelled; release on a fresh one.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		l.logger.Error("Failed to release game lock", zap.Stringer("gameID", gameID), zap.Error(err))
		return
	}
	if res == 0 {
		l.logger.Warn("Game lock expired before release", zap.Stringer("gameID", gameID))
		return
	}
	l.logger.Debug("Game lock released", zap.Stringer("gameID", gameID))
}
