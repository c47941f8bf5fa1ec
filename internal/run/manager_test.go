package run

import "testing"

func TestManagerOneSessionPerUser(t *testing.T) {
	m := NewManager(nil)

	first := m.Start("user-1")
	second := m.Start("user-1")
	if first != second {
		t.Fatalf("second start for the same user must return the existing session")
	}
	defer m.Finish(first.ID)

	other := m.Start("user-2")
	if other == first {
		t.Fatalf("different users must get different sessions")
	}
	defer m.Finish(other.ID)
}

func TestManagerGet(t *testing.T) {
	m := NewManager(nil)

	if _, err := m.Get("missing"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	s := m.Start("user-1")
	defer m.Finish(s.ID)

	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got != s {
		t.Fatalf("expected the started session back")
	}
}

func TestManagerFinishRemovesSession(t *testing.T) {
	m := NewManager(nil)
	s := m.Start("user-1")

	summary, err := m.Finish(s.ID)
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if summary.SessionID != s.ID || summary.UserID != "user-1" {
		t.Fatalf("unexpected summary %+v", summary)
	}

	if _, err := m.Get(s.ID); err != ErrSessionNotFound {
		t.Fatalf("finished session must be gone, got %v", err)
	}

	// the user can start again after finishing
	next := m.Start("user-1")
	if next == s {
		t.Fatalf("expected a fresh session after finish")
	}
	m.Finish(next.ID)

	if _, err := m.Finish("missing"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
