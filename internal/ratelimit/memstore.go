package ratelimit

import (
	"context"
	"time"

	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// MemoryLimiter adapts ulule/limiter's in-memory store to the Limiter
// contract. State lives in the process; there is no shared backend.
type MemoryLimiter struct {
	store limiter.Store
}

// NewMemoryLimiter builds a limiter backed by a fresh in-memory store.
func NewMemoryLimiter() MemoryLimiter {
	return MemoryLimiter{store: memory.NewStore()}
}

// Allow implements Limiter.
func (m MemoryLimiter) Allow(ctx context.Context, key string, window time.Duration, maxReq int) (bool, int, time.Time, error) {
	rate := limiter.Rate{Period: window, Limit: int64(maxReq)}
	lctx, err := limiter.New(m.store, rate).Get(ctx, key)
	if err != nil {
		return true, 0, time.Time{}, err
	}
	return !lctx.Reached, int(lctx.Remaining), time.Unix(lctx.Reset, 0), nil
}
