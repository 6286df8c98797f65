package memory

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// WaitlistRepository keeps Pro-waitlist signups in memory, keyed by
// case-folded email. Entries never expire on their own.
type WaitlistRepository struct {
	cache *cache.Cache
}

type WaitlistEntry struct {
	Email    string
	JoinedAt time.Time
}

func NewWaitlistRepository() *WaitlistRepository {
	return &WaitlistRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Add stores a signup. Returns false when the email was already on the list.
func (r *WaitlistRepository) Add(email string) bool {
	key := strings.ToLower(strings.TrimSpace(email))
	entry := WaitlistEntry{Email: email, JoinedAt: time.Now()}
	return r.cache.Add(key, entry, cache.NoExpiration) == nil
}

func (r *WaitlistRepository) Count() int {
	return r.cache.ItemCount()
}
