package run

import "time"

const splitDistanceM = 1000.0

// SplitTracker emits a Split each time accumulated distance crosses an
// integer-kilometer boundary. If several boundaries are crossed between two
// fixes only one split fires for that update; that is a known limitation of
// sparse GPS delivery, kept as-is.
type SplitTracker struct {
	lastSplitDistance float64
	lastSplitTime     time.Time
}

// Reset prepares the tracker for a new session starting at the given time.
func (t *SplitTracker) Reset(start time.Time) {
	t.lastSplitDistance = 0
	t.lastSplitTime = start
}

// Check fires when the current distance has entered a new whole kilometer.
// Split time covers only the segment since the previous boundary.
func (t *SplitTracker) Check(distanceM float64, now time.Time) (Split, bool) {
	currentKm := int(distanceM / splitDistanceM)
	lastKm := int(t.lastSplitDistance / splitDistanceM)

	if currentKm <= lastKm || currentKm <= 0 {
		return Split{}, false
	}

	segmentM := distanceM - t.lastSplitDistance
	segmentSec := now.Sub(t.lastSplitTime).Seconds()

	split := Split{
		Km:        currentKm,
		Time:      segmentSec,
		Pace:      pace(segmentM, segmentSec),
		Timestamp: now,
	}

	t.lastSplitDistance = distanceM
	t.lastSplitTime = now
	return split, true
}

// pace returns min/km for a segment, zero when either input is non-positive.
func pace(distanceM, timeSec float64) float64 {
	if distanceM <= 0 || timeSec <= 0 {
		return 0
	}
	return (timeSec / 60.0) / (distanceM / 1000.0)
}
