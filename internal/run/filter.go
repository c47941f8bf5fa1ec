package run

const (
	// maxAccuracyM is the horizontal/vertical accuracy bound; worse fixes are dropped.
	maxAccuracyM = 50.0
	// autoPauseSpeed is the walking threshold below which distance accrual suspends.
	autoPauseSpeed = 1.0 // m/s
)

type Decision int

const (
	FixRejected Decision = iota
	FixAutoPaused
	FixAccepted
)

// Filter gates raw fixes on accuracy and detects auto-pause. The only state
// it carries is the auto-pause flag from the previous fix.
type Filter struct {
	autoPaused bool
}

// Accept classifies a fix. Imprecise fixes are rejected outright. A fix with
// known speed under the walking threshold puts the filter into auto-pause and
// is withheld from accumulation; the first fast-enough fix releases it and is
// processed normally.
func (f *Filter) Accept(fix LocationFix) Decision {
	if fix.HorizontalAccuracy < 0 || fix.HorizontalAccuracy >= maxAccuracyM {
		return FixRejected
	}

	if fix.Speed >= 0 && fix.Speed < autoPauseSpeed {
		f.autoPaused = true
		return FixAutoPaused
	}
	f.autoPaused = false
	return FixAccepted
}

// AutoPaused reports whether the last classified fix left the filter auto-paused.
func (f *Filter) AutoPaused() bool {
	return f.autoPaused
}

// Reset clears the auto-pause flag for a new session.
func (f *Filter) Reset() {
	f.autoPaused = false
}
