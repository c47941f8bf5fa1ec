package run

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type sessionState int

const (
	stateIdle sessionState = iota
	stateRunning
	statePaused
	stateStopped
)

func (s sessionState) String() string {
	switch s {
	case stateRunning:
		return "running"
	case statePaused:
		return "paused"
	case stateStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// Session orchestrates one run: it owns the fix pipeline (filter, accumulator,
// split tracker, route sampler) and a 1 Hz wall-clock timer independent of
// location delivery. All state is mutated under one mutex, so asynchronous
// fix delivery and timer ticks are serialized onto a single logical owner.
type Session struct {
	mu sync.Mutex

	ID     string
	UserID string

	state      sessionState
	startTime  time.Time
	pausedTime time.Duration
	lastPause  time.Time

	filter  Filter
	acc     *Accumulator
	splits  SplitTracker
	sampler RouteSampler

	route       []RouteSample
	splitList   []Split
	durationSec float64

	providerErr string

	ticker   *time.Ticker
	stopTick chan struct{}

	// onUpdate, when set, receives a snapshot after every accepted fix and
	// every timer tick. Invoked outside the lock; callbacks must not
	// re-enter the session.
	onUpdate func(Snapshot)

	now func() time.Time
}

func NewSession(userID string, onUpdate func(Snapshot)) *Session {
	return &Session{
		ID:       uuid.NewString(),
		UserID:   userID,
		acc:      NewAccumulator(),
		onUpdate: onUpdate,
		now:      time.Now,
	}
}

// Start resets all accumulators and begins the timer and fix intake.
// Starting an already running session is a no-op.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateRunning || s.state == statePaused {
		return
	}

	s.acc = NewAccumulator()
	s.filter.Reset()
	s.sampler.Reset()
	s.route = nil
	s.splitList = nil
	s.durationSec = 0
	s.pausedTime = 0
	s.providerErr = ""

	s.startTime = s.now()
	s.splits.Reset(s.startTime)
	s.state = stateRunning

	s.startTimerLocked()
}

// Pause stops the timer and fix intake. No-op unless running. After Pause
// returns, no further tick or fix mutates the session.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateRunning {
		return
	}
	s.state = statePaused
	s.lastPause = s.now()
	s.stopTimerLocked()
}

// Resume restarts the timer after a pause, folding the paused interval into
// the pausedTime total so it is excluded from duration. No-op unless paused.
func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != statePaused {
		return
	}
	s.pausedTime += s.now().Sub(s.lastPause)
	s.state = stateRunning
	s.startTimerLocked()
}

// Stop finalizes the session and returns its immutable summary. Valid from
// running or paused; a second Stop returns the same aggregates.
func (s *Session) Stop() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateRunning || s.state == statePaused {
		s.stopTimerLocked()
		s.state = stateStopped
	}

	route := make([]RouteSample, len(s.route))
	copy(route, s.route)
	splits := make([]Split, len(s.splitList))
	copy(splits, s.splitList)

	return Summary{
		SessionID:     s.ID,
		UserID:        s.UserID,
		StartedAt:     s.startTime,
		DistanceM:     s.acc.DistanceM,
		DurationSec:   s.durationSec,
		AveragePace:   s.acc.AveragePace(s.durationSec),
		ElevationGain: s.acc.ElevationGain,
		Route:         route,
		Splits:        splits,
	}
}

// ProcessFix feeds one fix through the pipeline. Fixes arriving while the
// session is not running, imprecise fixes and auto-paused fixes are absorbed
// without error; nothing here is fatal.
func (s *Session) ProcessFix(fix LocationFix) {
	s.mu.Lock()

	if s.state != stateRunning {
		s.mu.Unlock()
		return
	}
	s.providerErr = ""

	switch s.filter.Accept(fix) {
	case FixRejected, FixAutoPaused:
		s.mu.Unlock()
		return
	}

	if s.sampler.ShouldRetain(fix) {
		s.route = append(s.route, Sample(fix))
	}

	if increment := s.acc.Update(fix); increment > 0 {
		if split, ok := s.splits.Check(s.acc.DistanceM, s.now()); ok {
			s.splitList = append(s.splitList, split)
		}
	}

	snapshot := s.snapshotLocked()
	notify := s.onUpdate
	s.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
}

// NoteProviderError records a non-fatal location-provider failure. The
// session keeps its state and resumes accumulating when fixes return.
func (s *Session) NoteProviderError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providerErr = msg
}

// Metrics returns the current live snapshot.
func (s *Session) Metrics() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// tick advances duration and average pace once per timer second. Duration
// keeps advancing through auto-pause; only explicit pause stops it.
func (s *Session) tick() {
	s.mu.Lock()

	if s.state != stateRunning {
		s.mu.Unlock()
		return
	}

	elapsed := s.now().Sub(s.startTime) - s.pausedTime
	s.durationSec = elapsed.Seconds()

	snapshot := s.snapshotLocked()
	notify := s.onUpdate
	s.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
}

func (s *Session) snapshotLocked() Snapshot {
	splits := make([]Split, len(s.splitList))
	copy(splits, s.splitList)

	return Snapshot{
		SessionID:     s.ID,
		UserID:        s.UserID,
		State:         s.state.String(),
		AutoPaused:    s.filter.AutoPaused(),
		DistanceM:     s.acc.DistanceM,
		DurationSec:   s.durationSec,
		CurrentSpeed:  s.acc.CurrentSpeed,
		CurrentPace:   s.acc.CurrentPace,
		AveragePace:   s.acc.AveragePace(s.durationSec),
		ElevationGain: s.acc.ElevationGain,
		RoutePoints:   len(s.route),
		Splits:        splits,
		ProviderError: s.providerErr,
	}
}

func (s *Session) startTimerLocked() {
	s.ticker = time.NewTicker(time.Second)
	s.stopTick = make(chan struct{})

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-ticker.C:
				s.tick()
			case <-done:
				return
			}
		}
	}(s.ticker, s.stopTick)
}

func (s *Session) stopTimerLocked() {
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.stopTick)
		s.ticker = nil
	}
}
