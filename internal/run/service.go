package run

import (
	"context"
	"time"

	"backend-runclub/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// SaveRun converts a finalized session summary into a persisted run record.
// The core never writes mid-session; only this finalized bundle is stored.
func (s *Service) SaveRun(ctx context.Context, summary Summary) (Run, error) {
	routeData, err := EncodeRoute(summary.Route)
	if err != nil {
		return Run{}, err
	}
	splitsData, err := EncodeSplits(summary.Splits)
	if err != nil {
		return Run{}, err
	}

	record := Run{
		ID:          uuid.NewString(),
		UserID:      summary.UserID,
		Date:        summary.StartedAt,
		DistanceM:   summary.DistanceM,
		DurationSec: summary.DurationSec,
		AveragePace: summary.AveragePace,
		RouteData:   routeData,
		SplitsData:  splitsData,
	}
	if summary.ElevationGain > 0 {
		gain := summary.ElevationGain
		record.ElevationGainM = &gain
	}
	if record.Date.IsZero() {
		record.Date = time.Now()
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO runs (id, user_id, date, distance_m, duration_sec, average_pace, elevation_gain_m, route_data, splits_data)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at
	`, record.ID, record.UserID, record.Date, record.DistanceM, record.DurationSec, record.AveragePace, record.ElevationGainM, record.RouteData, record.SplitsData)
	if err := row.Scan(&record.CreatedAt); err != nil {
		return Run{}, err
	}
	return record, nil
}

func (s *Service) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, date, distance_m, duration_sec, average_pace, max_pace, calories, elevation_gain_m,
		       route_data, splits_data, COALESCE(shared_group_ids, '{}'), is_highlighted, synced, created_at
		FROM runs WHERE id=$1
	`, id)
	var r Run
	err := row.Scan(&r.ID, &r.UserID, &r.Date, &r.DistanceM, &r.DurationSec, &r.AveragePace, &r.MaxPace, &r.Calories,
		&r.ElevationGainM, &r.RouteData, &r.SplitsData, &r.SharedGroupIDs, &r.IsHighlighted, &r.Synced, &r.CreatedAt)
	if err != nil {
		return Run{}, err
	}
	return r, nil
}

func (s *Service) ListRuns(ctx context.Context, userID string) ([]Run, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, date, distance_m, duration_sec, average_pace, max_pace, calories, elevation_gain_m,
		       route_data, splits_data, COALESCE(shared_group_ids, '{}'), is_highlighted, synced, created_at
		FROM runs WHERE user_id=$1
		ORDER BY date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.DistanceM, &r.DurationSec, &r.AveragePace, &r.MaxPace, &r.Calories,
			&r.ElevationGainM, &r.RouteData, &r.SplitsData, &r.SharedGroupIDs, &r.IsHighlighted, &r.Synced, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, nil
}

func (s *Service) SetHighlighted(ctx context.Context, id string, highlighted bool) error {
	_, err := s.db.Exec(ctx, `UPDATE runs SET is_highlighted=$2 WHERE id=$1`, id, highlighted)
	return err
}

// ShareToGroup records that a run was shared into a group feed.
func (s *Service) ShareToGroup(ctx context.Context, runID, groupID string) error {
	_, err := s.db.Exec(ctx, `
		UPDATE runs
		SET shared_group_ids = array_append(COALESCE(shared_group_ids, '{}'), $2)
		WHERE id=$1 AND NOT ($2 = ANY(COALESCE(shared_group_ids, '{}')))
	`, runID, groupID)
	return err
}
