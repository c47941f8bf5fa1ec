package event

import (
	"time"

	"backend-runclub/internal/geofence"
)

// Event statuses. The stored status field is an override (cancellation and
// the like); scheduled/active/completed are otherwise derived from the clock.
const (
	StatusScheduled = "scheduled"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// RunEvent is a timed group-running challenge at a fixed location.
type RunEvent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	RadiusM      float64   `json:"radius_m"`
	LocationName string    `json:"location_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	EventType    string    `json:"event_type"`     // sprint, endurance, social, challenge
	Difficulty   string    `json:"difficulty"`     // easy, medium, hard
	TargetDistM  *float64  `json:"target_distance_m,omitempty"`
	MinPeople    int       `json:"min_participants"`
	MaxPeople    *int      `json:"max_participants,omitempty"`
	Participants int       `json:"participant_count"`
	Status       string    `json:"status"`
	PointsReward int       `json:"points_reward"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// Duration is denormalized from the time window; EndTime > StartTime is an
// invariant enforced at creation.
func (e RunEvent) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

func (e RunEvent) IsActive(now time.Time) bool {
	return e.Status == StatusActive && !now.Before(e.StartTime) && !now.After(e.EndTime)
}

func (e RunEvent) IsScheduled(now time.Time) bool {
	return e.Status == StatusScheduled && now.Before(e.StartTime)
}

func (e RunEvent) IsCompleted(now time.Time) bool {
	return e.Status == StatusCompleted || now.After(e.EndTime)
}

func (e RunEvent) IsFull() bool {
	return e.MaxPeople != nil && e.Participants >= *e.MaxPeople
}

// Progress reports how far through its time window the event is, 0..1.
func (e RunEvent) Progress(now time.Time) float64 {
	if now.Before(e.StartTime) {
		return 0
	}
	if now.After(e.EndTime) {
		return 1
	}
	return now.Sub(e.StartTime).Seconds() / e.Duration().Seconds()
}

// Zone returns the event's geofence.
func (e RunEvent) Zone() geofence.Zone {
	return geofence.Zone{CenterLat: e.Lat, CenterLng: e.Lng, RadiusM: e.RadiusM}
}

// DistanceFrom returns meters from a point to the event center.
func (e RunEvent) DistanceFrom(lat, lng float64) float64 {
	return e.Zone().DistanceTo(lat, lng)
}

// Participant statuses.
const (
	ParticipantRegistered = "registered"
	ParticipantActive     = "active"
	ParticipantCompleted  = "completed"
	ParticipantCancelled  = "cancelled"
)

// Participant is one user's engagement with one event. Created on join,
// mutated continuously while active, finalized on stop or leave.
type Participant struct {
	ID            string     `json:"id"`
	EventID       string     `json:"event_id"`
	UserID        string     `json:"user_id"`
	UserName      string     `json:"user_name"`
	Status        string     `json:"status"`
	JoinedAt      time.Time  `json:"joined_at"`
	LastUpdate    time.Time  `json:"last_update"`
	DistanceM     float64    `json:"distance_m"`
	DurationSec   float64    `json:"duration_sec"`
	AveragePace   float64    `json:"average_pace_min_km"`
	CurrentRank   *int       `json:"current_rank,omitempty"`
	IsInsideZone  bool       `json:"is_inside_zone"`
	EnteredZoneAt *time.Time `json:"entered_zone_at,omitempty"`
	ExitedZoneAt  *time.Time `json:"exited_zone_at,omitempty"`
	GoalCompleted bool       `json:"goal_completed"`
	PointsEarned  int        `json:"points_earned"`
	LastKnownLat  *float64   `json:"last_known_lat,omitempty"`
	LastKnownLng  *float64   `json:"last_known_lng,omitempty"`
}

// TimeInZone returns the seconds spent inside the event zone, or false when
// the participant never entered it. A participant still inside counts up to
// now.
func (p Participant) TimeInZone(now time.Time) (float64, bool) {
	if p.EnteredZoneAt == nil {
		return 0, false
	}
	if p.ExitedZoneAt != nil {
		return p.ExitedZoneAt.Sub(*p.EnteredZoneAt).Seconds(), true
	}
	if p.IsInsideZone {
		return now.Sub(*p.EnteredZoneAt).Seconds(), true
	}
	return 0, false
}
