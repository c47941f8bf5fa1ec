package event

import (
	"testing"
	"time"
)

func TestNearbyFiltersByRadius(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	// ~0.009 degrees of longitude at the equator is a kilometer
	events := []RunEvent{
		{ID: "close", Lat: 0, Lng: 0.009, Status: StatusActive, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
		{ID: "far", Lat: 0, Lng: 0.09, Status: StatusActive, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
	}

	nearby := Nearby(events, 0, 0, now)
	if len(nearby) != 1 || nearby[0].ID != "close" {
		t.Fatalf("expected only the close event, got %+v", nearby)
	}
}

func TestNearbyExcludesCompleted(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	events := []RunEvent{
		{ID: "ended", Lat: 0, Lng: 0, Status: StatusActive, StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour)},
		{ID: "cancelled-but-live-window", Lat: 0, Lng: 0, Status: StatusCompleted, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
		{ID: "live", Lat: 0, Lng: 0, Status: StatusActive, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
	}

	nearby := Nearby(events, 0, 0, now)
	if len(nearby) != 1 || nearby[0].ID != "live" {
		t.Fatalf("expected only the live event, got %+v", nearby)
	}
}

func TestNearbyOrdersActiveFirstThenDistance(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	events := []RunEvent{
		{ID: "scheduled-near", Lat: 0, Lng: 0.001, Status: StatusScheduled, StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)},
		{ID: "active-far", Lat: 0, Lng: 0.02, Status: StatusActive, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
		{ID: "active-near", Lat: 0, Lng: 0.005, Status: StatusActive, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
	}

	nearby := Nearby(events, 0, 0, now)
	if len(nearby) != 3 {
		t.Fatalf("expected 3 events, got %d", len(nearby))
	}
	want := []string{"active-near", "active-far", "scheduled-near"}
	for i, id := range want {
		if nearby[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, nearby[i].ID)
		}
	}
}
