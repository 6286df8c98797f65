package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// UsageRepository counts AI exchanges per session over a rolling day. The
// counter expires 24h after the first recorded use; there is no calendar
// reset.
type UsageRepository struct {
	cache *cache.Cache
}

func NewUsageRepository() *UsageRepository {
	return &UsageRepository{
		cache: cache.New(24*time.Hour, 1*time.Hour),
	}
}

func (r *UsageRepository) Count(sessionId string) int {
	if x, found := r.cache.Get(sessionId); found {
		return x.(int)
	}
	return 0
}

func (r *UsageRepository) Increment(sessionId string) int {
	// Add only succeeds for the first use; later uses bump the existing
	// counter without touching its expiry.
	if err := r.cache.Add(sessionId, 1, cache.DefaultExpiration); err == nil {
		return 1
	}
	count, err := r.cache.IncrementInt(sessionId, 1)
	if err != nil {
		// Counter expired between Add and Increment; start a fresh window.
		r.cache.Set(sessionId, 1, cache.DefaultExpiration)
		return 1
	}
	return count
}
