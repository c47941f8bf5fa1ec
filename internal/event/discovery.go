package event

import (
	"sort"
	"time"
)

const (
	// SearchRadiusM bounds nearby-event discovery.
	SearchRadiusM = 5000.0
	// JoinRadiusM is how close a user must be to join an event.
	JoinRadiusM = 1000.0
)

// Nearby filters events to those within the search radius of the user and
// not yet completed, ordered active-first and then by ascending distance.
// Pure over the snapshot of events; safe to call concurrently.
func Nearby(events []RunEvent, lat, lng float64, now time.Time) []RunEvent {
	var nearby []RunEvent
	for _, e := range events {
		if e.DistanceFrom(lat, lng) <= SearchRadiusM && !e.IsCompleted(now) {
			nearby = append(nearby, e)
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		a, b := nearby[i], nearby[j]
		if a.IsActive(now) != b.IsActive(now) {
			return a.IsActive(now)
		}
		return a.DistanceFrom(lat, lng) < b.DistanceFrom(lat, lng)
	})
	return nearby
}
