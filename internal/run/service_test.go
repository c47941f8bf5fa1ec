package run

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	return mock
}

func TestSaveRun(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()

	createdAt := time.Now()
	mock.ExpectQuery(`INSERT INTO runs`).
		WithArgs(pgxmock.AnyArg(), "user-1", pgxmock.AnyArg(), 5200.0, 1560.0, 5.0, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	svc := NewService(mock)
	record, err := svc.SaveRun(context.Background(), Summary{
		SessionID:     "sess-1",
		UserID:        "user-1",
		StartedAt:     time.Now(),
		DistanceM:     5200,
		DurationSec:   1560,
		AveragePace:   5.0,
		ElevationGain: 12,
		Splits:        []Split{{Km: 1, Time: 300, Pace: 5.0}},
	})
	if err != nil {
		t.Fatalf("save run: %v", err)
	}
	if record.ID == "" {
		t.Fatalf("expected generated run ID")
	}
	if record.ElevationGainM == nil || *record.ElevationGainM != 12 {
		t.Fatalf("expected elevation gain recorded")
	}
	if !record.CreatedAt.Equal(createdAt) {
		t.Fatalf("expected created_at from the database")
	}

	splits, err := DecodeSplits(record.SplitsData)
	if err != nil || len(splits) != 1 || splits[0].Km != 1 {
		t.Fatalf("splits blob does not round-trip: %v %v", splits, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveRunPropagatesDBError(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO runs`).
		WithArgs(pgxmock.AnyArg(), "user-1", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection refused"))

	svc := NewService(mock)
	if _, err := svc.SaveRun(context.Background(), Summary{UserID: "user-1"}); err == nil {
		t.Fatalf("expected save error surfaced")
	}
}

func runRowColumns() []string {
	return []string{"id", "user_id", "date", "distance_m", "duration_sec", "average_pace", "max_pace",
		"calories", "elevation_gain_m", "route_data", "splits_data", "shared_group_ids", "is_highlighted",
		"synced", "created_at"}
}

func TestListRuns(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)SELECT .+ FROM runs WHERE user_id`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(runRowColumns()).
			AddRow("run-1", "user-1", now, 5200.0, 1560.0, 5.0, nil, nil, nil, []byte(`[]`), []byte(`[]`), []string{}, false, false, now).
			AddRow("run-2", "user-1", now.Add(-time.Hour), 3000.0, 900.0, 5.0, nil, nil, nil, []byte(`[]`), []byte(`[]`), []string{"group-1"}, true, false, now))

	svc := NewService(mock)
	runs, err := svc.ListRuns(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[1].SharedGroupIDs[0] != "group-1" || !runs[1].IsHighlighted {
		t.Fatalf("unexpected run loaded: %+v", runs[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetRun(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)SELECT .+ FROM runs WHERE id`).
		WithArgs("run-1").
		WillReturnRows(pgxmock.NewRows(runRowColumns()).
			AddRow("run-1", "user-1", now, 5200.0, 1560.0, 5.0, nil, nil, nil, []byte(`[]`), []byte(`[]`), []string{}, false, false, now))

	svc := NewService(mock)
	record, err := svc.GetRun(context.Background(), "run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if record.ID != "run-1" || record.DistanceM != 5200 {
		t.Fatalf("unexpected run: %+v", record)
	}
}

func TestHighlightAndShare(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()

	mock.ExpectExec(`UPDATE runs SET is_highlighted`).
		WithArgs("run-1", true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE runs`).
		WithArgs("run-1", "group-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	svc := NewService(mock)
	if err := svc.SetHighlighted(context.Background(), "run-1", true); err != nil {
		t.Fatalf("highlight: %v", err)
	}
	if err := svc.ShareToGroup(context.Background(), "run-1", "group-1"); err != nil {
		t.Fatalf("share: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
