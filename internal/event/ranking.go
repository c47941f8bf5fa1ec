package event

import "sort"

// Rank orders active and completed participants by distance descending and
// assigns 1-based ranks in place. Ranks are a snapshot; they are only valid
// until the next recompute.
func Rank(participants []*Participant) []*Participant {
	var ranked []*Participant
	for _, p := range participants {
		if p.Status == ParticipantActive || p.Status == ParticipantCompleted {
			ranked = append(ranked, p)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceM > ranked[j].DistanceM
	})

	for i, p := range ranked {
		rank := i + 1
		p.CurrentRank = &rank
	}
	return ranked
}
