package event

import "time"

const (
	goalBonus           = 50
	pointsPerZoneMinute = 2
)

// rankBonus pays out the podium: 100/75/50 for ranks 1/2/3.
func rankBonus(rank int) int {
	switch rank {
	case 1:
		return 100
	case 2:
		return 75
	case 3:
		return 50
	default:
		return 0
	}
}

// Points computes a participant's final score: the event's base reward, a
// goal-completion bonus, 2 points per whole minute spent in the zone, and a
// podium bonus for ranks 1-3.
func Points(e RunEvent, p Participant, now time.Time) int {
	points := e.PointsReward

	if p.GoalCompleted {
		points += goalBonus
	}

	if inZone, ok := p.TimeInZone(now); ok {
		points += int(inZone/60) * pointsPerZoneMinute
	}

	if p.CurrentRank != nil {
		points += rankBonus(*p.CurrentRank)
	}
	return points
}
