package run

import "time"

// LocationFix is one raw GPS reading as delivered by the location provider.
// Speed and Course are negative when the provider could not determine them.
type LocationFix struct {
	Lat                float64   `json:"lat"`
	Lng                float64   `json:"lng"`
	Timestamp          time.Time `json:"timestamp"`
	HorizontalAccuracy float64   `json:"horizontal_accuracy_m"`
	VerticalAccuracy   float64   `json:"vertical_accuracy_m"`
	Altitude           float64   `json:"altitude_m"`
	Speed              float64   `json:"speed_mps"`
	Course             float64   `json:"course_deg"`
}

// RouteSample is one retained point of the stored route polyline.
type RouteSample struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
	Altitude  *float64  `json:"altitude_m,omitempty"`
	Speed     *float64  `json:"speed_mps,omitempty"`
}

// Split is the timing segment for one completed kilometer.
type Split struct {
	Km        int       `json:"km"`
	Time      float64   `json:"time_sec"`
	Pace      float64   `json:"pace_min_km"`
	Timestamp time.Time `json:"timestamp"`
}

// Summary is the immutable result of a finished session.
type Summary struct {
	SessionID     string        `json:"session_id"`
	UserID        string        `json:"user_id"`
	StartedAt     time.Time     `json:"started_at"`
	DistanceM     float64       `json:"distance_m"`
	DurationSec   float64       `json:"duration_sec"`
	AveragePace   float64       `json:"average_pace_min_km"`
	ElevationGain float64       `json:"elevation_gain_m"`
	Route         []RouteSample `json:"route"`
	Splits        []Split       `json:"splits"`
}

// Snapshot is the live view of a running session, broadcast on every
// accepted fix and every timer tick.
type Snapshot struct {
	SessionID     string  `json:"session_id"`
	UserID        string  `json:"user_id"`
	State         string  `json:"state"`
	AutoPaused    bool    `json:"auto_paused"`
	DistanceM     float64 `json:"distance_m"`
	DurationSec   float64 `json:"duration_sec"`
	CurrentSpeed  float64 `json:"current_speed_mps"`
	CurrentPace   float64 `json:"current_pace_min_km"`
	AveragePace   float64 `json:"average_pace_min_km"`
	ElevationGain float64 `json:"elevation_gain_m"`
	RoutePoints   int     `json:"route_points"`
	Splits        []Split `json:"splits"`
	ProviderError string  `json:"provider_error,omitempty"`
}

// Run is the persisted record of a completed session.
type Run struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Date           time.Time `json:"date"`
	DistanceM      float64   `json:"distance_m"`
	DurationSec    float64   `json:"duration_sec"`
	AveragePace    float64   `json:"average_pace_min_km"`
	MaxPace        *float64  `json:"max_pace_min_km,omitempty"`
	Calories       *int      `json:"calories,omitempty"`
	ElevationGainM *float64  `json:"elevation_gain_m,omitempty"`
	RouteData      []byte    `json:"route_data,omitempty"`
	SplitsData     []byte    `json:"splits_data,omitempty"`
	SharedGroupIDs []string  `json:"shared_group_ids"`
	IsHighlighted  bool      `json:"is_highlighted"`
	Synced         bool      `json:"synced"`
	CreatedAt      time.Time `json:"created_at"`
}
