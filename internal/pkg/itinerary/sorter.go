package itinerary

import "sort"

// SortByScore orders candidates by total score, highest first, and moves
// long tours behind every regular candidate. The sort is stable so equal
// scores keep their input order. A new slice is returned.
func SortByScore(scored []ScoredCandidate) []ScoredCandidate {
	regular := make([]ScoredCandidate, 0, len(scored))
	longTours := make([]ScoredCandidate, 0)

	for _, c := range scored {
		if c.Flags.LongTour {
			longTours = append(longTours, c)
			continue
		}
		regular = append(regular, c)
	}

	byScore := func(list []ScoredCandidate) {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].TotalScore > list[j].TotalScore
		})
	}

	byScore(regular)
	byScore(longTours)

	return append(regular, longTours...)
}

// MarkBestDeals marks the first n regular candidates of a ranked list as
// optimal. Long tours are never marked.
func MarkBestDeals(ranked []ScoredCandidate, n int) []ScoredCandidate {
	marked := 0

	for i := range ranked {
		if marked >= n {
			break
		}
		if ranked[i].Flags.LongTour || ranked[i].Placeholder {
			continue
		}

		ranked[i].Optimal = true
		marked++
	}

	return ranked
}
