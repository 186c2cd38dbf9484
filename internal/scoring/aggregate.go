package scoring

import "math"

// ScoreDimension computes the weighted score for one dimension from the
// answers belonging to it. Answers for other dimensions are ignored. A
// dimension with no answers scores 0 at level "low" with an empty
// subdimension map.
func ScoreDimension(cfg *Config, key DimensionKey, answers []Answer) DimensionScore {
	var dimensionAnswers []Answer
	for _, a := range answers {
		if a.Dimension == key {
			dimensionAnswers = append(dimensionAnswers, a)
		}
	}

	if len(dimensionAnswers) == 0 {
		return DimensionScore{
			Dimension:          key,
			Name:               cfg.DimensionName(key),
			Score:              0,
			Level:              LevelLow,
			QuestionsAnswered:  0,
			TotalWeight:        0,
			SubdimensionScores: map[string]int{},
			Color:              cfg.DimensionColor(key),
		}
	}

	var totalWeightedScore, totalWeight float64
	type subTotal struct {
		total  float64
		weight float64
	}
	subTotals := make(map[string]*subTotal)

	for _, a := range dimensionAnswers {
		weighted := a.Value * a.Weight
		totalWeightedScore += weighted
		totalWeight += a.Weight

		st, ok := subTotals[a.Subdimension]
		if !ok {
			st = &subTotal{}
			subTotals[a.Subdimension] = st
		}
		st.total += weighted
		st.weight += a.Weight
	}

	score := 0
	if totalWeight > 0 {
		score = int(math.Round(totalWeightedScore / totalWeight))
	}

	subScores := make(map[string]int, len(subTotals))
	for name, st := range subTotals {
		if st.weight > 0 {
			subScores[name] = int(math.Round(st.total / st.weight))
		} else {
			subScores[name] = 0
		}
	}

	return DimensionScore{
		Dimension:          key,
		Name:               cfg.DimensionName(key),
		Score:              score,
		Level:              LevelForScore(score),
		QuestionsAnswered:  len(dimensionAnswers),
		TotalWeight:        totalWeight,
		SubdimensionScores: subScores,
		Color:              cfg.DimensionColor(key),
	}
}
