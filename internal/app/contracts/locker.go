package contracts

import (
	"context"
	"time"
)

// LockerService hands out short redis locks. Availability submissions
// hold one per professional and the upload prune worker holds the
// leader lock while it runs.
type LockerService interface {
	// TryLock returns false without an error when the key is already held.
	// The returned value identifies this holder for Unlock and Refresh.
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
	Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error
}
