// Package geofence computes zone membership for circular event areas.
// Everything here is a pure function over a location and a zone; the caller
// keeps the previous membership flag and applies any side effects.
package geofence

import "backend-runclub/internal/shared/geo"

// Zone is a circular area around a center point.
type Zone struct {
	CenterLat float64
	CenterLng float64
	RadiusM   float64
}

// IsInside reports whether the point lies within the zone. The boundary is
// closed: a point exactly at radius distance is inside.
func (z Zone) IsInside(lat, lng float64) bool {
	return geo.DistanceM(lat, lng, z.CenterLat, z.CenterLng) <= z.RadiusM
}

// DistanceTo returns the distance in meters from the point to the zone center.
func (z Zone) DistanceTo(lat, lng float64) float64 {
	return geo.DistanceM(lat, lng, z.CenterLat, z.CenterLng)
}

type Transition int

const (
	None Transition = iota
	Entered
	Exited
)

// ComputeTransition derives the membership edge from the previous and
// current inside flags.
func ComputeTransition(wasInside, isInside bool) Transition {
	switch {
	case !wasInside && isInside:
		return Entered
	case wasInside && !isInside:
		return Exited
	default:
		return None
	}
}
