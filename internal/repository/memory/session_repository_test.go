package memory

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"ai-resume-be/internal/entity"
)

func newSession() *entity.EditorSession {
	now := time.Now()
	return &entity.EditorSession{Id: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	session := newSession()

	repo.Save(session)

	got, found := repo.Get(session.Id.String())
	if !found {
		t.Fatal("saved session not found")
	}
	if got.Id != session.Id {
		t.Errorf("got session %s, want %s", got.Id, session.Id)
	}

	repo.Delete(session.Id.String())
	if _, found := repo.Get(session.Id.String()); found {
		t.Error("deleted session still present")
	}
}

func TestSessionRepositoryGetUnknown(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	if _, found := repo.Get(uuid.NewString()); found {
		t.Error("unknown session reported as found")
	}
}

func TestAcquireBusy(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	session := newSession()
	repo.Save(session)

	if _, ok := repo.AcquireBusy(session.Id.String()); !ok {
		t.Fatal("first acquire should succeed")
	}
	if _, ok := repo.AcquireBusy(session.Id.String()); ok {
		t.Error("second acquire on a busy session should fail")
	}

	repo.ReleaseBusy(session.Id.String())
	if _, ok := repo.AcquireBusy(session.Id.String()); !ok {
		t.Error("acquire after release should succeed")
	}
}

func TestAcquireBusyUnknownSession(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	if _, ok := repo.AcquireBusy(uuid.NewString()); ok {
		t.Error("acquire on an unknown session should fail")
	}
}

func TestUsageRepositoryCounting(t *testing.T) {
	repo := NewUsageRepository()
	key := uuid.NewString()

	if got := repo.Count(key); got != 0 {
		t.Errorf("fresh key Count = %d, want 0", got)
	}

	for want := 1; want <= 3; want++ {
		if got := repo.Increment(key); got != want {
			t.Errorf("Increment = %d, want %d", got, want)
		}
	}
	if got := repo.Count(key); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}

	// Counters are per session.
	if got := repo.Count(uuid.NewString()); got != 0 {
		t.Errorf("other key Count = %d, want 0", got)
	}
}

func TestWaitlistRepositoryDeduplicates(t *testing.T) {
	repo := NewWaitlistRepository()

	if !repo.Add("jane@example.com") {
		t.Fatal("first signup should succeed")
	}
	if repo.Add("jane@example.com") {
		t.Error("duplicate signup should report false")
	}
	if repo.Add("  JANE@example.COM ") {
		t.Error("case and whitespace variants are the same email")
	}
	if repo.Count() != 1 {
		t.Errorf("Count = %d, want 1", repo.Count())
	}
}
