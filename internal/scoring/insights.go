package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// GenerateInsights derives strength, gap, pattern, and opportunity insights
// from the dimension scores and the overall score.
func GenerateInsights(dimensionScores []DimensionScore, overallScore int) []Insight {
	insights := []Insight{}
	if len(dimensionScores) == 0 {
		return insights
	}

	sorted := make([]DimensionScore, len(dimensionScores))
	copy(sorted, dimensionScores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	top := sorted
	if len(top) > 2 {
		top = top[:2]
	}
	bottom := sorted
	if len(bottom) > 2 {
		bottom = bottom[len(bottom)-2:]
	}

	for _, dim := range top {
		if dim.Score < 60 {
			continue
		}
		insights = append(insights, Insight{
			Type:  InsightStrength,
			Title: fmt.Sprintf("Strong %s", dim.Name),
			Description: fmt.Sprintf(
				"Your %s is a significant strength at %d%%. This positions you well to help others and lead AI initiatives.",
				strings.ToLower(dim.Name), dim.Score),
			Dimension: dim.Dimension,
		})
	}

	for _, dim := range bottom {
		if dim.Score >= 60 {
			continue
		}
		insights = append(insights, Insight{
			Type:  InsightGap,
			Title: fmt.Sprintf("%s Gap", dim.Name),
			Description: fmt.Sprintf(
				"Your %s score of %d%% is an area for focused development. Addressing this will significantly boost your overall AI adaptability.",
				strings.ToLower(dim.Name), dim.Score),
			Dimension: dim.Dimension,
		})
	}

	// Spread around the overall score signals how even the profile is.
	var variance float64
	for _, dim := range dimensionScores {
		diff := float64(dim.Score - overallScore)
		variance += diff * diff
	}
	variance /= float64(len(dimensionScores))
	stdDev := math.Sqrt(variance)

	if stdDev < 10 {
		insights = append(insights, Insight{
			Type:        InsightPattern,
			Title:       "Balanced Profile",
			Description: "Your scores are relatively consistent across all dimensions, indicating a well-rounded AI adaptability profile.",
		})
	} else if stdDev > 25 {
		insights = append(insights, Insight{
			Type:        InsightPattern,
			Title:       "Uneven Development",
			Description: "There's significant variation in your dimension scores. Focus on bringing up your lower-scoring areas for more balanced growth.",
		})
	}

	if overallScore >= 60 && overallScore < 80 {
		insights = append(insights, Insight{
			Type:        InsightOpportunity,
			Title:       "Ready to Lead",
			Description: "Your profile suggests you're ready to take on AI leadership responsibilities. Consider mentoring others or leading AI initiatives.",
		})
	}

	return insights
}
