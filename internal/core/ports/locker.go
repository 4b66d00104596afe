// internal/core/ports/locker.go
package ports

import (
	"context"
	"time"
)

// Locker provides single-flight mutual exclusion keyed by an arbitrary
// string (a shop or an order id). Acquire returns domain.ErrLocked when the
// key is already held; the returned release function must be called when
// the protected run finishes.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}
