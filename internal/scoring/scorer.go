package scoring

import (
	"math"
	"sort"
	"time"
)

// Scorer computes GlueIQ results against one assessment definition. It holds
// no mutable state and is safe for concurrent use.
type Scorer struct {
	cfg *Config
	now func() time.Time
}

// NewScorer builds a Scorer for the given assessment definition. A nil
// config falls back to the standard GlueIQ definition.
func NewScorer(cfg *Config) *Scorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Scorer{cfg: cfg, now: time.Now}
}

// WithClock returns a copy of the Scorer stamping results with the given
// clock. Used by tests to pin CompletedAt.
func (s *Scorer) WithClock(now func() time.Time) *Scorer {
	return &Scorer{cfg: s.cfg, now: now}
}

// Config returns the assessment definition this Scorer runs against.
func (s *Scorer) Config() *Config { return s.cfg }

// CalculateScore computes the complete GlueIQ result for one answer set.
//
// Every registered dimension is scored even when it has no answers, so the
// result always carries one DimensionScore per dimension in registry order.
// The overall score is the unweighted mean of the dimension scores, rounded.
// Scoring is deterministic: the same answers always yield the same result
// apart from CompletedAt.
func (s *Scorer) CalculateScore(answers []Answer) Result {
	dims := s.cfg.Dimensions()
	dimensionScores := make([]DimensionScore, 0, len(dims))
	for _, d := range dims {
		dimensionScores = append(dimensionScores, ScoreDimension(s.cfg, d.Key, answers))
	}

	overall := 0
	if len(dimensionScores) > 0 {
		total := 0
		for _, d := range dimensionScores {
			total += d.Score
		}
		overall = int(math.Round(float64(total) / float64(len(dimensionScores))))
	}

	maturityLevel := MaturityLevelForScore(overall)

	var strengths []string
	strengthDims := make([]DimensionScore, 0, len(dimensionScores))
	for _, d := range dimensionScores {
		if d.Score >= 70 {
			strengthDims = append(strengthDims, d)
		}
	}
	sort.SliceStable(strengthDims, func(i, j int) bool {
		return strengthDims[i].Score > strengthDims[j].Score
	})
	for _, d := range strengthDims {
		strengths = append(strengths, d.Name)
	}

	var growthAreas []string
	growthDims := make([]DimensionScore, 0, len(dimensionScores))
	for _, d := range dimensionScores {
		if d.Score < 50 {
			growthDims = append(growthDims, d)
		}
	}
	sort.SliceStable(growthDims, func(i, j int) bool {
		return growthDims[i].Score < growthDims[j].Score
	})
	for _, d := range growthDims {
		growthAreas = append(growthAreas, d.Name)
	}

	return Result{
		OverallScore:    overall,
		MaturityLevel:   maturityLevel,
		MaturityName:    MaturityName(maturityLevel),
		DimensionScores: dimensionScores,
		Strengths:       strengths,
		GrowthAreas:     growthAreas,
		Recommendations: GenerateRecommendations(dimensionScores),
		Insights:        GenerateInsights(dimensionScores, overall),
		CompletedAt:     s.now(),
	}
}
