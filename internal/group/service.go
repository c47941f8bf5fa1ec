package group

import (
	"context"

	"backend-runclub/internal/db"
	"backend-runclub/internal/run"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// CreateGroup makes a group with the creator as its first admin member.
func (s *Service) CreateGroup(ctx context.Context, input Group) (Group, error) {
	input.ID = uuid.NewString()
	input.MemberCount = 1

	row := s.db.QueryRow(ctx, `
		INSERT INTO groups (id, name, description, city, state, is_public, member_count, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at
	`, input.ID, input.Name, input.Description, input.City, input.State, input.IsPublic, input.MemberCount, input.CreatedBy)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Group{}, err
	}

	if _, err := s.AddMember(ctx, input.ID, input.CreatedBy, "", "admin"); err != nil {
		return Group{}, err
	}
	return input, nil
}

func (s *Service) GetGroup(ctx context.Context, id string) (Group, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, description, city, state, is_public, member_count, created_by, created_at
		FROM groups WHERE id=$1
	`, id)
	var g Group
	if err := row.Scan(&g.ID, &g.Name, &g.Description, &g.City, &g.State, &g.IsPublic, &g.MemberCount, &g.CreatedBy, &g.CreatedAt); err != nil {
		return Group{}, err
	}
	return g, nil
}

func (s *Service) ListGroups(ctx context.Context, userID string) ([]Group, error) {
	rows, err := s.db.Query(ctx, `
		SELECT g.id, g.name, g.description, g.city, g.state, g.is_public, g.member_count, g.created_by, g.created_at
		FROM groups g
		JOIN group_members m ON m.group_id = g.id
		WHERE m.user_id=$1
		ORDER BY g.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []Group
	for rows.Next() {
		var g Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.City, &g.State, &g.IsPublic, &g.MemberCount, &g.CreatedBy, &g.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (s *Service) AddMember(ctx context.Context, groupID, userID, userName, role string) (Member, error) {
	if role == "" {
		role = "member"
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO group_members (group_id, user_id, user_name, role)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (group_id, user_id) DO UPDATE SET role=EXCLUDED.role
		RETURNING joined_at
	`, groupID, userID, userName, role)
	member := Member{GroupID: groupID, UserID: userID, UserName: userName, Role: role}
	if err := row.Scan(&member.JoinedAt); err != nil {
		return Member{}, err
	}

	if _, err := s.db.Exec(ctx, `
		UPDATE groups SET member_count = (SELECT COUNT(*) FROM group_members WHERE group_id=$1) WHERE id=$1
	`, groupID); err != nil {
		return Member{}, err
	}
	return member, nil
}

func (s *Service) Members(ctx context.Context, groupID string) ([]Member, error) {
	rows, err := s.db.Query(ctx, `
		SELECT group_id, user_id, user_name, role, joined_at
		FROM group_members WHERE group_id=$1
		ORDER BY joined_at
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.GroupID, &m.UserID, &m.UserName, &m.Role, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

// SharedRuns lists the runs shared into the group's feed, newest first.
// No ranking beyond recency; the feed is a plain chronological list.
func (s *Service) SharedRuns(ctx context.Context, groupID string) ([]run.Run, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, date, distance_m, duration_sec, average_pace, max_pace, calories, elevation_gain_m,
		       route_data, splits_data, COALESCE(shared_group_ids, '{}'), is_highlighted, synced, created_at
		FROM runs
		WHERE $1 = ANY(COALESCE(shared_group_ids, '{}'))
		ORDER BY date DESC
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []run.Run
	for rows.Next() {
		var r run.Run
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.DistanceM, &r.DurationSec, &r.AveragePace, &r.MaxPace,
			&r.Calories, &r.ElevationGainM, &r.RouteData, &r.SplitsData, &r.SharedGroupIDs, &r.IsHighlighted,
			&r.Synced, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, nil
}
