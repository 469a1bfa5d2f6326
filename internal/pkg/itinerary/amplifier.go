package itinerary

import "math"

// amplificationTier describes how strongly a dominant weight reshapes the
// linear score of its axis. Tiers are data so strong and extreme cannot drift
// apart.
type amplificationTier struct {
	name      string
	minWeight float64

	// boost exponent for favorable values, growing by exponentSlope per unit
	// of weight above minWeight. Applied as 1-(1-s)^exponent so favorable
	// scores rise; a literal s^exponent would lower them.
	exponent      float64
	exponentSlope float64

	// maximum fractional reduction for unfavorable values
	penalty      float64
	penaltySlope float64

	// percentile cut points, expressed for lower-is-better metrics and
	// mirrored for rating
	boostCut   float64
	penaltyCut float64

	// absolute rating cut points; zero falls back to the percentiles
	ratingBoostAt      float64
	ratingPenaltyBelow float64
}

// ordered from the highest minWeight down
var amplificationTiers = []amplificationTier{
	{
		name:               "extreme",
		minWeight:          0.7,
		exponent:           1.6,
		exponentSlope:      2.0,
		penalty:            0.5,
		penaltySlope:       1.0,
		boostCut:           0.5,
		penaltyCut:         0.75,
		ratingBoostAt:      4.5,
		ratingPenaltyBelow: 4.0,
	},
	{
		name:       "strong",
		minWeight:  0.6,
		exponent:   1.3,
		penalty:    0.25,
		boostCut:   0.5,
		penaltyCut: 0.5,
	},
}

func tierFor(weight float64) (amplificationTier, bool) {
	for _, t := range amplificationTiers {
		if weight >= t.minWeight {
			return t, true
		}
	}

	return amplificationTier{}, false
}

// Amplify reshapes the linear 0-100 score of one axis when that axis's weight
// is dominant, so that moving a preference slider to an extreme visibly
// changes the ranking. raw is the candidate's metric value and stats the
// statistics of that metric over the candidate set. Below a weight of 0.6,
// or when the metric does not vary, the score is returned unchanged.
func Amplify(score, raw float64, stats MetricStats, axis Axis, weight float64) float64 {
	score = clampScore(score)

	tier, ok := tierFor(weight)
	if !ok || stats.Degenerate() {
		return score
	}

	over := weight - tier.minWeight
	exponent := tier.exponent + tier.exponentSlope*over
	strength := math.Min(tier.penalty+tier.penaltySlope*over, 1)

	s := score / 100
	higherIsBetter := axis == AxisQuality

	if tier.favorable(raw, stats, higherIsBetter) {
		s = 1 - math.Pow(1-s, exponent)
	} else if excess := tier.excess(raw, stats, higherIsBetter); excess > 0 {
		s *= 1 - strength*excess
	}

	return clampScore(100 * s)
}

func (t amplificationTier) favorable(raw float64, stats MetricStats, higherIsBetter bool) bool {
	if !higherIsBetter {
		return raw <= stats.percentile(t.boostCut)
	}

	if t.ratingBoostAt > 0 {
		return raw >= t.ratingBoostAt
	}

	return raw >= stats.percentile(1-t.boostCut)
}

// excess is how far raw lies past the penalty cut on the unfavorable side,
// scaled into (0, 1]. Zero means no penalty applies.
func (t amplificationTier) excess(raw float64, stats MetricStats, higherIsBetter bool) float64 {
	if !higherIsBetter {
		cut := stats.percentile(t.penaltyCut)
		if raw <= cut || stats.Max <= cut {
			return 0
		}
		return math.Min((raw-cut)/(stats.Max-cut), 1)
	}

	if t.ratingPenaltyBelow > 0 {
		cut := t.ratingPenaltyBelow
		if raw >= cut {
			return 0
		}
		return math.Min((cut-raw)/cut, 1)
	}

	cut := stats.percentile(1 - t.penaltyCut)
	if raw >= cut || cut <= stats.Min {
		return 0
	}

	return math.Min((cut-raw)/(cut-stats.Min), 1)
}
