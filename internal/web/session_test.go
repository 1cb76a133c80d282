package web

import (
	"testing"
	"time"

	"github.com/sunghokang/judgement.archive/internal/archive"
)

func TestSessionStoreCreateAndGet(t *testing.T) {
	store := newSessionStore(time.Hour, nil)

	id, sess := store.create()
	if id == "" || sess == nil {
		t.Fatal("create returned empty session")
	}
	if sess.Mode() != archive.VariantSimple {
		t.Fatalf("new session mode = %q, want simple", sess.Mode())
	}
	if got := store.get(id); got != sess {
		t.Fatal("get should return the created session")
	}
	if store.get("missing") != nil {
		t.Fatal("unknown id should return nil")
	}
}

func TestSessionStoreIdleExpiry(t *testing.T) {
	current := time.Date(2025, 8, 31, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return current }
	store := newSessionStore(time.Hour, clock)

	id, _ := store.create()

	current = current.Add(30 * time.Minute)
	if store.get(id) == nil {
		t.Fatal("session expired before TTL")
	}

	// The lookup above refreshed the idle clock.
	current = current.Add(59 * time.Minute)
	if store.get(id) == nil {
		t.Fatal("activity should extend the session")
	}

	current = current.Add(2 * time.Hour)
	if store.get(id) != nil {
		t.Fatal("idle session should expire")
	}
	if store.len() != 0 {
		t.Fatalf("expired session still registered, len = %d", store.len())
	}
}

func TestSessionModeSwitch(t *testing.T) {
	store := newSessionStore(time.Hour, nil)
	_, sess := store.create()

	sess.SetMode(archive.VariantFull)
	if sess.Mode() != archive.VariantFull {
		t.Fatalf("mode = %q, want full", sess.Mode())
	}
}

func TestSessionStoreDelete(t *testing.T) {
	store := newSessionStore(time.Hour, nil)
	id, _ := store.create()

	store.delete(id)
	if store.get(id) != nil {
		t.Fatal("deleted session should be gone")
	}
}
