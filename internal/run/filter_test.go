package run

import "testing"

func TestFilterRejectsImpreciseFixes(t *testing.T) {
	var f Filter

	if got := f.Accept(LocationFix{HorizontalAccuracy: -1, Speed: 3}); got != FixRejected {
		t.Fatalf("negative accuracy must be rejected, got %v", got)
	}
	if got := f.Accept(LocationFix{HorizontalAccuracy: 50, Speed: 3}); got != FixRejected {
		t.Fatalf("accuracy at bound must be rejected, got %v", got)
	}
	if got := f.Accept(LocationFix{HorizontalAccuracy: 49.9, Speed: 3}); got != FixAccepted {
		t.Fatalf("accuracy below bound must pass, got %v", got)
	}
}

func TestFilterAutoPause(t *testing.T) {
	var f Filter

	if got := f.Accept(LocationFix{HorizontalAccuracy: 10, Speed: 0.5}); got != FixAutoPaused {
		t.Fatalf("slow fix must auto-pause, got %v", got)
	}
	if !f.AutoPaused() {
		t.Fatalf("expected auto-pause flag set")
	}

	// stays paused while slow
	if got := f.Accept(LocationFix{HorizontalAccuracy: 10, Speed: 0.9}); got != FixAutoPaused {
		t.Fatalf("still slow, expected auto-pause, got %v", got)
	}

	// first fast fix releases and is processed
	if got := f.Accept(LocationFix{HorizontalAccuracy: 10, Speed: 1.0}); got != FixAccepted {
		t.Fatalf("fast fix must release auto-pause, got %v", got)
	}
	if f.AutoPaused() {
		t.Fatalf("expected auto-pause flag cleared")
	}
}

func TestFilterUnknownSpeedDoesNotAutoPause(t *testing.T) {
	var f Filter

	if got := f.Accept(LocationFix{HorizontalAccuracy: 10, Speed: -1}); got != FixAccepted {
		t.Fatalf("unknown speed must not auto-pause, got %v", got)
	}
}

func TestFilterReset(t *testing.T) {
	var f Filter
	f.Accept(LocationFix{HorizontalAccuracy: 10, Speed: 0})
	f.Reset()
	if f.AutoPaused() {
		t.Fatalf("expected flag cleared after reset")
	}
}
