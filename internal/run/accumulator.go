package run

import "backend-runclub/internal/shared/geo"

// NoPace marks an unknown current pace. Zero would read as an infinitely
// fast runner, so unknown must stay distinguishable.
const NoPace = -1.0

// Accumulator folds accepted fixes into distance, speed/pace and elevation.
// It keeps the previous fix so each update adds the geodesic increment
// between consecutive fixes.
type Accumulator struct {
	last *LocationFix

	DistanceM     float64
	CurrentSpeed  float64
	CurrentPace   float64
	ElevationGain float64

	lowestAlt  *float64
	highestAlt *float64
}

func NewAccumulator() *Accumulator {
	return &Accumulator{CurrentPace: NoPace}
}

// Update processes one accepted fix and returns the distance increment in
// meters. The first fix only establishes the baseline and contributes zero.
func (a *Accumulator) Update(fix LocationFix) float64 {
	var increment float64
	if a.last != nil {
		increment = geo.DistanceM(a.last.Lat, a.last.Lng, fix.Lat, fix.Lng)
		a.DistanceM += increment
	}

	if fix.Speed >= 0 {
		a.CurrentSpeed = fix.Speed
		if fix.Speed > 0 {
			// pace min/km = 60 / (km/h)
			a.CurrentPace = 60.0 / (fix.Speed * 3.6)
		}
	}

	a.updateElevation(fix)

	last := fix
	a.last = &last
	return increment
}

// AveragePace returns the session average in min/km for the given elapsed
// duration. Zero distance yields zero, never NaN.
func (a *Accumulator) AveragePace(durationSec float64) float64 {
	if a.DistanceM <= 0 {
		return 0
	}
	km := a.DistanceM / 1000.0
	minutes := durationSec / 60.0
	return minutes / km
}

// updateElevation tracks the lowest and highest altitude seen across fixes
// with acceptable vertical accuracy. Gain is reported as highest-lowest,
// the max swing over the session, not cumulative ascent.
func (a *Accumulator) updateElevation(fix LocationFix) {
	if fix.VerticalAccuracy < 0 || fix.VerticalAccuracy >= maxAccuracyM {
		return
	}

	alt := fix.Altitude
	if a.lowestAlt == nil {
		a.lowestAlt = &alt
		high := alt
		a.highestAlt = &high
	} else {
		if alt < *a.lowestAlt {
			*a.lowestAlt = alt
		}
		if alt > *a.highestAlt {
			*a.highestAlt = alt
		}
	}
	a.ElevationGain = *a.highestAlt - *a.lowestAlt
}

// Last returns the most recent fix folded in, or nil before the first.
func (a *Accumulator) Last() *LocationFix {
	return a.last
}
