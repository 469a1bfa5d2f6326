package itinerary

import "math"

// TotalScore combines the axis scores with normalized weights. The result is
// rounded to two decimals and stays in [0, 100].
func TotalScore(scores AxisScores, weights PreferenceWeights) float64 {
	total := weights.Budget*clampScore(scores.Budget) +
		weights.Quality*clampScore(scores.Quality) +
		weights.Convenience*clampScore(scores.Convenience)

	return clampScore(math.Round(total*100) / 100)
}

// ScoreCandidates extracts metrics for every candidate, normalizes them
// against the set and computes the weighted total. When amplify is set the
// dominant axis is reshaped by Amplify before weighting. The input slice is
// not modified; the normalization context used is returned for the flagger.
func ScoreCandidates(
	candidates []Candidate,
	weights PreferenceWeights,
	amplify bool,
) ([]ScoredCandidate, NormalizationContext) {
	metrics := make([]Metrics, len(candidates))
	for i, c := range candidates {
		metrics[i] = ExtractMetrics(c)
	}

	ctx := NewNormalizationContext(metrics)

	scored := make([]ScoredCandidate, len(candidates))
	for i, c := range candidates {
		scores := ctx.Scores(metrics[i])

		if amplify {
			scores = AxisScores{
				Budget: Amplify(scores.Budget, metrics[i].Price,
					ctx.Price, AxisBudget, weights.Budget),
				Quality: Amplify(scores.Quality, metrics[i].Rating,
					ctx.Rating, AxisQuality, weights.Quality),
				Convenience: Amplify(scores.Convenience, metrics[i].Convenience,
					ctx.Convenience, AxisConvenience, weights.Convenience),
			}
		}

		scored[i] = ScoredCandidate{
			Candidate:  c,
			Metrics:    metrics[i],
			Scores:     scores,
			TotalScore: TotalScore(scores, weights),
		}
	}

	return scored, ctx
}
