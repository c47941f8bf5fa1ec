package run

import (
	"math"
	"testing"
	"time"
)

func fixAt(lat, lng, speed float64) LocationFix {
	return LocationFix{
		Lat:                lat,
		Lng:                lng,
		Timestamp:          time.Now(),
		HorizontalAccuracy: 5,
		VerticalAccuracy:   -1,
		Speed:              speed,
		Course:             -1,
	}
}

func TestAccumulatorFirstFixContributesZero(t *testing.T) {
	a := NewAccumulator()

	inc := a.Update(fixAt(0, 0, 3))
	if inc != 0 {
		t.Fatalf("expected zero increment on first fix, got %f", inc)
	}
	if a.DistanceM != 0 {
		t.Fatalf("expected zero distance, got %f", a.DistanceM)
	}
	if a.Last() == nil {
		t.Fatalf("expected baseline fix retained")
	}
}

func TestAccumulatorDistanceIncrement(t *testing.T) {
	a := NewAccumulator()
	a.Update(fixAt(0, 0, 3))

	// 0.009 degrees of longitude at the equator is about a kilometer
	inc := a.Update(fixAt(0, 0.009, 3))
	if math.Abs(inc-1000) > 5 {
		t.Fatalf("expected ~1000m increment, got %f", inc)
	}
	if math.Abs(a.DistanceM-1000) > 5 {
		t.Fatalf("expected ~1000m total, got %f", a.DistanceM)
	}
}

func TestAccumulatorPace(t *testing.T) {
	a := NewAccumulator()
	if a.CurrentPace != NoPace {
		t.Fatalf("expected pace sentinel before first fix, got %f", a.CurrentPace)
	}

	// speed unknown: pace stays at the sentinel
	a.Update(fixAt(0, 0, -1))
	if a.CurrentPace != NoPace {
		t.Fatalf("unknown speed must not set pace, got %f", a.CurrentPace)
	}

	// 10 km/h runner paces at 6 min/km
	a.Update(fixAt(0, 0.0001, 10.0/3.6))
	if math.Abs(a.CurrentPace-6.0) > 0.01 {
		t.Fatalf("expected 6 min/km, got %f", a.CurrentPace)
	}

	// zero speed keeps the last real pace rather than dividing by zero
	a.Update(fixAt(0, 0.0002, 0))
	if math.Abs(a.CurrentPace-6.0) > 0.01 {
		t.Fatalf("zero speed must not change pace, got %f", a.CurrentPace)
	}
	if a.CurrentSpeed != 0 {
		t.Fatalf("zero speed must still be recorded, got %f", a.CurrentSpeed)
	}
}

func TestAccumulatorAveragePace(t *testing.T) {
	a := NewAccumulator()
	if got := a.AveragePace(600); got != 0 {
		t.Fatalf("zero distance must average to zero, got %f", got)
	}

	a.DistanceM = 2000
	if got := a.AveragePace(600); math.Abs(got-5.0) > 0.001 {
		t.Fatalf("2km in 10min should average 5 min/km, got %f", got)
	}
}

func TestAccumulatorElevationSwing(t *testing.T) {
	a := NewAccumulator()

	withAlt := func(lng, alt, vAcc float64) LocationFix {
		f := fixAt(0, lng, 3)
		f.Altitude = alt
		f.VerticalAccuracy = vAcc
		return f
	}

	a.Update(withAlt(0, 100, 5))
	a.Update(withAlt(0.0001, 110, 5))
	a.Update(withAlt(0.0002, 95, 5))
	if math.Abs(a.ElevationGain-15) > 0.001 {
		t.Fatalf("expected 15m swing, got %f", a.ElevationGain)
	}

	// imprecise vertical readings are ignored entirely
	a.Update(withAlt(0.0003, 500, 80))
	if math.Abs(a.ElevationGain-15) > 0.001 {
		t.Fatalf("imprecise altitude must not widen the swing, got %f", a.ElevationGain)
	}
}

func TestAccumulatorStationaryFixes(t *testing.T) {
	a := NewAccumulator()
	a.Update(fixAt(10, 10, 3))

	inc := a.Update(fixAt(10, 10, 3))
	if inc != 0 {
		t.Fatalf("identical coordinates must contribute zero, got %f", inc)
	}
	if a.DistanceM != 0 {
		t.Fatalf("expected distance unchanged, got %f", a.DistanceM)
	}
}
