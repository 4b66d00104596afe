// internal/adapters/redis/locker_test.go
package redis_a

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
)

func setupLocker(t *testing.T) (*Locker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewLocker(client, slog.Default()), mr
}

func TestLocker_AcquireAndRelease(t *testing.T) {
	locker, _ := setupLocker(t)
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "setup:test-shop", time.Minute)
	require.NoError(t, err)

	// Second acquisition while held is rejected.
	_, err = locker.Acquire(ctx, "setup:test-shop", time.Minute)
	assert.ErrorIs(t, err, domain.ErrLocked)

	// Different keys are independent.
	otherRelease, err := locker.Acquire(ctx, "setup:other-shop", time.Minute)
	require.NoError(t, err)
	otherRelease()

	release()

	// Released key can be taken again.
	release, err = locker.Acquire(ctx, "setup:test-shop", time.Minute)
	require.NoError(t, err)
	release()
}

func TestLocker_ExpiredLeaseCanBeReacquired(t *testing.T) {
	locker, mr := setupLocker(t)
	ctx := context.Background()

	_, err := locker.Acquire(ctx, "fulfill-order:42", time.Second)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	release, err := locker.Acquire(ctx, "fulfill-order:42", time.Second)
	require.NoError(t, err)
	release()
}

func TestLocker_ReleaseIsOwnerSafe(t *testing.T) {
	locker, mr := setupLocker(t)
	ctx := context.Background()

	staleRelease, err := locker.Acquire(ctx, "fulfill-order:42", time.Second)
	require.NoError(t, err)

	// The lease expires and another run takes the key.
	mr.FastForward(2 * time.Second)
	release, err := locker.Acquire(ctx, "fulfill-order:42", time.Minute)
	require.NoError(t, err)

	// The stale holder's release must not free the new holder's lock.
	staleRelease()
	_, err = locker.Acquire(ctx, "fulfill-order:42", time.Minute)
	assert.ErrorIs(t, err, domain.ErrLocked)

	release()
}
