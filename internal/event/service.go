package event

import (
	"context"
	"errors"
	"time"

	"backend-runclub/internal/db"
	"backend-runclub/internal/geofence"

	"github.com/google/uuid"
)

var (
	ErrEventFull     = errors.New("event is full")
	ErrTooFar        = errors.New("too far from event to join")
	ErrInvalidWindow = errors.New("event end time must be after start time")
)

type Service struct {
	db       db.Querier
	notifier Notifier
	now      func() time.Time
}

func NewService(db db.Querier, notifier Notifier) *Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Service{db: db, notifier: notifier, now: time.Now}
}

func (s *Service) CreateEvent(ctx context.Context, input RunEvent) (RunEvent, error) {
	if !input.EndTime.After(input.StartTime) {
		return RunEvent{}, ErrInvalidWindow
	}
	input.ID = uuid.NewString()
	if input.Status == "" {
		input.Status = StatusScheduled
	}
	if input.RadiusM == 0 {
		input.RadiusM = 100
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO events (id, name, description, lat, lng, radius_m, location_name, start_time, end_time,
		                    event_type, difficulty, target_distance_m, min_participants, max_participants,
		                    participant_count, status, points_reward, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING created_at
	`, input.ID, input.Name, input.Description, input.Lat, input.Lng, input.RadiusM, input.LocationName,
		input.StartTime, input.EndTime, input.EventType, input.Difficulty, input.TargetDistM,
		input.MinPeople, input.MaxPeople, input.Participants, input.Status, input.PointsReward, input.CreatedBy)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return RunEvent{}, err
	}
	return input, nil
}

// Nearby loads the open events and filters them around the user's position:
// within the search radius, not completed, active first then closest first.
func (s *Service) Nearby(ctx context.Context, lat, lng float64) ([]RunEvent, error) {
	now := s.now()

	rows, err := s.db.Query(ctx, `
		SELECT id, name, description, lat, lng, radius_m, location_name, start_time, end_time,
		       event_type, difficulty, target_distance_m, min_participants, max_participants,
		       participant_count, status, points_reward, created_by, created_at
		FROM events
		WHERE status != 'completed' AND status != 'cancelled' AND end_time > $1
	`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []RunEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return Nearby(events, lat, lng, now), nil
}

// Join registers the user for an event. Rejected when the event is full or
// the user is farther than the join radius from its center; neither
// rejection mutates any state.
func (s *Service) Join(ctx context.Context, eventID, userID, userName string, lat, lng float64) (Participant, error) {
	e, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return Participant{}, err
	}
	if e.IsFull() {
		return Participant{}, ErrEventFull
	}
	if e.DistanceFrom(lat, lng) > JoinRadiusM {
		return Participant{}, ErrTooFar
	}

	now := s.now()
	p := Participant{
		ID:           uuid.NewString(),
		EventID:      eventID,
		UserID:       userID,
		UserName:     userName,
		Status:       ParticipantRegistered,
		JoinedAt:     now,
		LastUpdate:   now,
		IsInsideZone: e.Zone().IsInside(lat, lng),
		LastKnownLat: &lat,
		LastKnownLng: &lng,
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO event_participants (id, event_id, user_id, user_name, status, joined_at, last_update,
		                                is_inside_zone, last_known_lat, last_known_lng)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING joined_at
	`, p.ID, p.EventID, p.UserID, p.UserName, p.Status, p.JoinedAt, p.LastUpdate, p.IsInsideZone, lat, lng)
	if err := row.Scan(&p.JoinedAt); err != nil {
		return Participant{}, err
	}

	if _, err := s.db.Exec(ctx, `
		UPDATE events SET participant_count = participant_count + 1 WHERE id=$1
	`, eventID); err != nil {
		return Participant{}, err
	}

	s.notifier.Notify(Notification{Kind: NoteEventJoined, EventID: eventID, UserID: userID, At: now})
	return p, nil
}

// Leave abandons the event before completing: the participant is cancelled,
// the seat is freed and no points are computed. A user who never joined
// leaves nothing to cancel and the seat count stays untouched.
func (s *Service) Leave(ctx context.Context, eventID, userID string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE event_participants SET status=$3, last_update=$4 WHERE event_id=$1 AND user_id=$2
	`, eventID, userID, ParticipantCancelled, s.now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return nil
	}

	if _, err := s.db.Exec(ctx, `
		UPDATE events SET participant_count = GREATEST(participant_count - 1, 0) WHERE id=$1
	`, eventID); err != nil {
		return err
	}

	s.notifier.Notify(Notification{Kind: NoteEventLeft, EventID: eventID, UserID: userID, At: s.now()})
	return nil
}

// StartRunning flips the participant to active. enteredZoneAt is stamped
// only when the user is already inside the zone.
func (s *Service) StartRunning(ctx context.Context, eventID, userID string) (Participant, error) {
	p, err := s.GetParticipant(ctx, eventID, userID)
	if err != nil {
		return Participant{}, err
	}

	now := s.now()
	p.Status = ParticipantActive
	p.LastUpdate = now
	if p.IsInsideZone && p.EnteredZoneAt == nil {
		p.EnteredZoneAt = &now
	}

	if _, err := s.db.Exec(ctx, `
		UPDATE event_participants SET status=$3, last_update=$4, entered_zone_at=$5
		WHERE event_id=$1 AND user_id=$2
	`, eventID, userID, p.Status, p.LastUpdate, p.EnteredZoneAt); err != nil {
		return Participant{}, err
	}
	return p, nil
}

// UpdateMetrics overwrites the participant's live metrics from the run
// session, re-evaluates zone membership and recomputes the leaderboard.
// Zone entry and exit edges are reported through the notifier.
func (s *Service) UpdateMetrics(ctx context.Context, eventID, userID string, distanceM, durationSec, pace, lat, lng float64) (Participant, error) {
	e, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return Participant{}, err
	}
	p, err := s.GetParticipant(ctx, eventID, userID)
	if err != nil {
		return Participant{}, err
	}

	now := s.now()
	inside := e.Zone().IsInside(lat, lng)
	transition := geofence.ComputeTransition(p.IsInsideZone, inside)

	p.DistanceM = distanceM
	p.DurationSec = durationSec
	p.AveragePace = pace
	p.LastKnownLat = &lat
	p.LastKnownLng = &lng
	p.LastUpdate = now
	p.IsInsideZone = inside

	switch transition {
	case geofence.Entered:
		if p.EnteredZoneAt == nil {
			p.EnteredZoneAt = &now
		}
	case geofence.Exited:
		p.ExitedZoneAt = &now
	}

	if _, err := s.db.Exec(ctx, `
		UPDATE event_participants
		SET distance_m=$3, duration_sec=$4, average_pace=$5, last_known_lat=$6, last_known_lng=$7,
		    last_update=$8, is_inside_zone=$9, entered_zone_at=$10, exited_zone_at=$11
		WHERE event_id=$1 AND user_id=$2
	`, eventID, userID, p.DistanceM, p.DurationSec, p.AveragePace, lat, lng,
		p.LastUpdate, p.IsInsideZone, p.EnteredZoneAt, p.ExitedZoneAt); err != nil {
		return Participant{}, err
	}

	switch transition {
	case geofence.Entered:
		s.notifier.Notify(Notification{Kind: NoteZoneEntered, EventID: eventID, UserID: userID, At: now})
	case geofence.Exited:
		s.notifier.Notify(Notification{Kind: NoteZoneExited, EventID: eventID, UserID: userID, At: now})
	}

	if _, err := s.Leaderboard(ctx, eventID); err != nil {
		return Participant{}, err
	}
	return p, nil
}

// StopRunning finalizes the participant: completed status, zone exit stamp,
// goal check against the event target, rank refresh and point scoring.
func (s *Service) StopRunning(ctx context.Context, eventID, userID string) (Participant, error) {
	e, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return Participant{}, err
	}
	p, err := s.GetParticipant(ctx, eventID, userID)
	if err != nil {
		return Participant{}, err
	}

	now := s.now()
	p.Status = ParticipantCompleted
	p.ExitedZoneAt = &now
	p.IsInsideZone = false
	p.LastUpdate = now
	p.GoalCompleted = e.TargetDistM != nil && p.DistanceM >= *e.TargetDistM

	if _, err := s.db.Exec(ctx, `
		UPDATE event_participants
		SET status=$3, exited_zone_at=$4, is_inside_zone=false, last_update=$5, goal_completed=$6
		WHERE event_id=$1 AND user_id=$2
	`, eventID, userID, p.Status, p.ExitedZoneAt, p.LastUpdate, p.GoalCompleted); err != nil {
		return Participant{}, err
	}

	ranked, err := s.Leaderboard(ctx, eventID)
	if err != nil {
		return Participant{}, err
	}
	for _, r := range ranked {
		if r.UserID == userID {
			p.CurrentRank = r.CurrentRank
		}
	}

	p.PointsEarned = Points(e, p, now)
	if _, err := s.db.Exec(ctx, `
		UPDATE event_participants SET points_earned=$3 WHERE event_id=$1 AND user_id=$2
	`, eventID, userID, p.PointsEarned); err != nil {
		return Participant{}, err
	}
	return p, nil
}

// Leaderboard recomputes and persists ranks for active and completed
// participants, distance descending. Ranks are snapshots, not live values.
func (s *Service) Leaderboard(ctx context.Context, eventID string) ([]*Participant, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, event_id, user_id, user_name, status, joined_at, last_update, distance_m, duration_sec,
		       average_pace, current_rank, is_inside_zone, entered_zone_at, exited_zone_at, goal_completed,
		       points_earned, last_known_lat, last_known_lng
		FROM event_participants
		WHERE event_id=$1 AND status IN ('active','completed')
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []*Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, &p)
	}

	ranked := Rank(participants)
	for _, p := range ranked {
		if _, err := s.db.Exec(ctx, `
			UPDATE event_participants SET current_rank=$3 WHERE event_id=$1 AND user_id=$2
		`, eventID, p.UserID, p.CurrentRank); err != nil {
			return nil, err
		}
	}
	return ranked, nil
}

func (s *Service) GetEvent(ctx context.Context, id string) (RunEvent, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, description, lat, lng, radius_m, location_name, start_time, end_time,
		       event_type, difficulty, target_distance_m, min_participants, max_participants,
		       participant_count, status, points_reward, created_by, created_at
		FROM events WHERE id=$1
	`, id)
	return scanEvent(row)
}

func (s *Service) GetParticipant(ctx context.Context, eventID, userID string) (Participant, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, event_id, user_id, user_name, status, joined_at, last_update, distance_m, duration_sec,
		       average_pace, current_rank, is_inside_zone, entered_zone_at, exited_zone_at, goal_completed,
		       points_earned, last_known_lat, last_known_lng
		FROM event_participants WHERE event_id=$1 AND user_id=$2
	`, eventID, userID)
	return scanParticipant(row)
}

type scannable interface {
	Scan(dest ...any) error
}

func scanEvent(row scannable) (RunEvent, error) {
	var e RunEvent
	err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Lat, &e.Lng, &e.RadiusM, &e.LocationName,
		&e.StartTime, &e.EndTime, &e.EventType, &e.Difficulty, &e.TargetDistM, &e.MinPeople,
		&e.MaxPeople, &e.Participants, &e.Status, &e.PointsReward, &e.CreatedBy, &e.CreatedAt)
	if err != nil {
		return RunEvent{}, err
	}
	return e, nil
}

func scanParticipant(row scannable) (Participant, error) {
	var p Participant
	err := row.Scan(&p.ID, &p.EventID, &p.UserID, &p.UserName, &p.Status, &p.JoinedAt, &p.LastUpdate,
		&p.DistanceM, &p.DurationSec, &p.AveragePace, &p.CurrentRank, &p.IsInsideZone,
		&p.EnteredZoneAt, &p.ExitedZoneAt, &p.GoalCompleted, &p.PointsEarned, &p.LastKnownLat, &p.LastKnownLng)
	if err != nil {
		return Participant{}, err
	}
	return p, nil
}
