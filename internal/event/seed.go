package event

import (
	"context"
	"time"
)

// SeedEvents inserts a handful of demo events around a location so discovery
// has something to show before any real events exist.
func (s *Service) SeedEvents(ctx context.Context, lat, lng float64, createdBy string) ([]RunEvent, error) {
	now := s.now()
	target5k := 5000.0
	target3k := 3000.0
	target10k := 10000.0
	max20, max15, max30 := 20, 15, 30

	seeds := []RunEvent{
		{
			Name:         "Sunrise Run",
			Description:  "Morning run in the park, everyone welcome.",
			Lat:          lat + 0.01,
			Lng:          lng + 0.01,
			RadiusM:      150,
			LocationName: "Boa Vista Park",
			StartTime:    now.Add(10 * time.Minute),
			EndTime:      now.Add(time.Hour),
			EventType:    "social",
			Difficulty:   "easy",
			TargetDistM:  &target5k,
			MinPeople:    3,
			MaxPeople:    &max20,
			Participants: 8,
			Status:       StatusScheduled,
			PointsReward: 150,
			CreatedBy:    createdBy,
		},
		{
			Name:         "Sprint Challenge",
			Description:  "Speed challenge, best pace wins.",
			Lat:          lat - 0.02,
			Lng:          lng + 0.015,
			RadiusM:      100,
			LocationName: "Boa Viagem Waterfront",
			StartTime:    now.Add(-5 * time.Minute),
			EndTime:      now.Add(20 * time.Minute),
			EventType:    "sprint",
			Difficulty:   "hard",
			TargetDistM:  &target3k,
			MinPeople:    2,
			MaxPeople:    &max15,
			Participants: 12,
			Status:       StatusActive,
			PointsReward: 250,
			CreatedBy:    createdBy,
		},
		{
			Name:         "Night Endurance",
			Description:  "Long endurance run after dark.",
			Lat:          lat + 0.03,
			Lng:          lng - 0.02,
			RadiusM:      200,
			LocationName: "Dona Lindu Park",
			StartTime:    now.Add(2 * time.Hour),
			EndTime:      now.Add(3 * time.Hour),
			EventType:    "endurance",
			Difficulty:   "hard",
			TargetDistM:  &target10k,
			MinPeople:    5,
			MaxPeople:    &max30,
			Participants: 4,
			Status:       StatusScheduled,
			PointsReward: 500,
			CreatedBy:    createdBy,
		},
	}

	var created []RunEvent
	for _, seed := range seeds {
		e, err := s.CreateEvent(ctx, seed)
		if err != nil {
			return nil, err
		}
		created = append(created, e)
	}
	return created, nil
}
