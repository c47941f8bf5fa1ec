package run

import (
	"math"

	"backend-runclub/internal/shared/geo"
)

const (
	retainDistanceM = 10.0
	retainIntervalS = 5.0
	retainCourseDeg = 15.0
)

// RouteSampler decides which fixes make it into the stored route polyline.
// Distance accumulation uses every accepted fix; the polyline keeps only
// enough points to preserve shape, so storage stays bounded on long runs.
type RouteSampler struct {
	last *LocationFix
}

// ShouldRetain retains a fix when there is no prior retained fix, or when the
// runner moved far enough, enough time passed, or the heading turned sharply
// since the last retained fix.
func (s *RouteSampler) ShouldRetain(fix LocationFix) bool {
	if s.last == nil {
		s.retain(fix)
		return true
	}

	moved := distanceBetween(*s.last, fix) > retainDistanceM
	timePassed := fix.Timestamp.Sub(s.last.Timestamp).Seconds() > retainIntervalS
	turned := math.Abs(fix.Course-s.last.Course) > retainCourseDeg

	if moved || timePassed || turned {
		s.retain(fix)
		return true
	}
	return false
}

// Reset drops the retained baseline for a new session.
func (s *RouteSampler) Reset() {
	s.last = nil
}

func (s *RouteSampler) retain(fix LocationFix) {
	last := fix
	s.last = &last
}

func distanceBetween(a, b LocationFix) float64 {
	return geo.DistanceM(a.Lat, a.Lng, b.Lat, b.Lng)
}

// Sample converts a fix to its persisted route form. Unknown speed is stored
// as absent rather than a negative sentinel.
func Sample(fix LocationFix) RouteSample {
	sample := RouteSample{
		Lat:       fix.Lat,
		Lng:       fix.Lng,
		Timestamp: fix.Timestamp,
	}
	alt := fix.Altitude
	sample.Altitude = &alt
	if fix.Speed >= 0 {
		speed := fix.Speed
		sample.Speed = &speed
	}
	return sample
}
