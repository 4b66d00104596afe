// internal/adapters/redis/locker.go
package redis_a

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
)

const lockKeyPrefix = "lock:"

// releaseScript deletes the lock only if the caller still owns it, so an
// expired lease released late never clobbers a newer holder.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker provides single-flight mutual exclusion backed by Redis SetNX
// leases, shared across API and worker processes.
type Locker struct {
	client *redis.Client
	logger *slog.Logger
}

// Statically assert that *Locker implements the Locker interface.
var _ ports.Locker = (*Locker)(nil)

// NewLocker creates a new Redis-backed locker.
func NewLocker(client *redis.Client, logger *slog.Logger) *Locker {
	return &Locker{
		client: client,
		logger: logger.With(slog.String("component", "locker")),
	}
}

// Acquire takes the lease for key, returning domain.ErrLocked when another
// run already holds it. The TTL bounds how long a crashed holder can block
// the key.
func (l *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	redisKey := lockKeyPrefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, redisKey, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, domain.ErrLocked
	}

	l.logger.DebugContext(ctx, "lock acquired",
		slog.String("key", key),
		slog.Duration("ttl", ttl))

	release := func() {
		// Release runs on a fresh context: the lock must be freed even
		// when the protected run's context is already canceled.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil && err != redis.Nil {
			l.logger.Warn("failed to release lock",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}
	return release, nil
}
