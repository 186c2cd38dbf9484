package scoring

import (
	"fmt"
	"math"
)

// Display helpers for rendering scores in reports and exports.

// ScoreGrade maps a 0-100 score onto a letter grade.
func ScoreGrade(score int) string {
	switch {
	case score < 30:
		return "F"
	case score < 50:
		return "D"
	case score < 60:
		return "C"
	case score < 75:
		return "B"
	case score < 90:
		return "A"
	default:
		return "A+"
	}
}

// ScoreColor returns the UI color for a 0-100 score.
func ScoreColor(score int) string {
	switch {
	case score >= 80:
		return "#10B981"
	case score >= 60:
		return "#06B6D4"
	case score >= 40:
		return "#F59E0B"
	default:
		return "#EF4444"
	}
}

// FormatScorePercentage renders a score as a percentage string.
func FormatScorePercentage(score int) string {
	return fmt.Sprintf("%d%%", score)
}

// MaturityLabel renders a maturity level with its name, e.g.
// "Level 7: AI Advanced".
func MaturityLabel(level int) string {
	return fmt.Sprintf("Level %d: %s", level, MaturityName(level))
}

// Percentile returns the percentage of benchmark scores strictly below the
// given score, rounded. An empty benchmark set yields 0.
func Percentile(score int, benchmarks []int) int {
	if len(benchmarks) == 0 {
		return 0
	}
	below := 0
	for _, b := range benchmarks {
		if b < score {
			below++
		}
	}
	return int(math.Round(float64(below) / float64(len(benchmarks)) * 100))
}

// Rank classifies a score against a benchmark average.
func Rank(score, benchmarkAverage int) string {
	diff := score - benchmarkAverage
	switch {
	case diff > 20:
		return "Industry Leader"
	case diff > 10:
		return "Above Average"
	case diff > -10:
		return "Average"
	case diff > -20:
		return "Below Average"
	default:
		return "Needs Improvement"
	}
}
