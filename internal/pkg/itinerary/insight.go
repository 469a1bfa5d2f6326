package itinerary

// ComposeInsight explains the chosen combination in one sentence based on
// which preference, if any, outweighs the other two.
func ComposeInsight(weights PreferenceWeights) string {
	axis, ok := weights.Dominant()
	if !ok {
		return "We picked a balanced combination that weighs price, quality and convenience evenly."
	}

	switch axis {
	case AxisBudget:
		return "We prioritized savings, choosing the options that keep your trip within budget at the lowest cost."
	case AxisQuality:
		return "We prioritized quality, favoring the best rated flight, stay and experience."
	default:
		return "We prioritized convenience, favoring short travel times and a central place to stay."
	}
}
