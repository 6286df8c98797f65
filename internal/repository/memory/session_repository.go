package memory

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"ai-resume-be/internal/entity"
)

// SessionRepository holds editor sessions in process memory. Sessions expire
// after the idle TTL; every Save refreshes it. There is deliberately no
// durable store behind this; a session dies with the process.
//
// Get hands out the shared session pointer, so every read or write of the
// stored object must happen under the mutex from LockFor. The repository's
// own mutex only guards the busy flag and the lock table.
type SessionRepository struct {
	cache *cache.Cache
	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// Purge expired sessions every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	r := &SessionRepository{cache: c, locks: make(map[string]*sync.RWMutex)}
	c.OnEvicted(func(key string, _ interface{}) {
		r.mu.Lock()
		delete(r.locks, key)
		r.mu.Unlock()
	})
	return r
}

func (r *SessionRepository) Save(session *entity.EditorSession) {
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionId string) (*entity.EditorSession, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*entity.EditorSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}

// LockFor returns the mutex guarding one session's fields. Concurrent request
// handlers share the session pointer, so hold this across any access to the
// document, messages, or flow state.
func (r *SessionRepository) LockFor(sessionId string) *sync.RWMutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[sessionId]
	if !ok {
		lock = &sync.RWMutex{}
		r.locks[sessionId] = lock
	}
	return lock
}

// AcquireBusy atomically sets the session's busy flag. Returns false when the
// session is missing or already has a send in flight.
func (r *SessionRepository) AcquireBusy(sessionId string) (*entity.EditorSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, found := r.Get(sessionId)
	if !found || session.Busy {
		return nil, false
	}
	session.Busy = true
	r.Save(session)
	return session, true
}

func (r *SessionRepository) ReleaseBusy(sessionId string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, found := r.Get(sessionId); found {
		session.Busy = false
		r.Save(session)
	}
}
