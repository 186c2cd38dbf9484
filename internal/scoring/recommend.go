package scoring

import (
	"fmt"
	"sort"
)

type recommendationTemplate struct {
	title       string
	description func(score int) string
	actionItems []string
}

var recommendationTemplates = map[DimensionKey]recommendationTemplate{
	DimensionIndividual: {
		title: "Build Your AI Foundation",
		description: func(score int) string {
			return fmt.Sprintf("Your Individual Readiness score of %d%% indicates opportunity to strengthen your personal AI capabilities.", score)
		},
		actionItems: []string{
			"Complete an AI literacy course (e.g., Google AI Essentials, LinkedIn Learning)",
			"Experiment with one new AI tool this week",
			"Set aside 30 minutes daily for AI exploration",
			"Join an AI community or forum to learn from others",
		},
	},
	DimensionLeadership: {
		title: "Develop AI Leadership Skills",
		description: func(score int) string {
			return fmt.Sprintf("Your Leadership Capability score of %d%% shows room to grow in guiding others through AI transformation.", score)
		},
		actionItems: []string{
			"Create a vision document for how AI will benefit your team",
			"Schedule monthly AI learning sessions with your team",
			"Identify and mentor one team member as an AI champion",
			"Practice communicating AI benefits in business terms",
		},
	},
	DimensionCultural: {
		title: "Foster Innovation Culture",
		description: func(score int) string {
			return fmt.Sprintf("Your Cultural Alignment score of %d%% suggests opportunity to create a more innovation-friendly environment.", score)
		},
		actionItems: []string{
			"Celebrate AI experiments, even unsuccessful ones",
			"Create a safe space for sharing AI concerns and fears",
			"Start a weekly AI wins and learnings share-out",
			"Establish guidelines for responsible AI experimentation",
		},
	},
	DimensionEmbedding: {
		title: "Embed AI Into Your Workflow",
		description: func(score int) string {
			return fmt.Sprintf("Your Behavior Embedding score of %d%% indicates AI practices aren't yet fully integrated into daily work.", score)
		},
		actionItems: []string{
			"Document your top 3 AI use cases with step-by-step guides",
			"Add AI prompts to your existing templates and processes",
			"Set weekly goals for AI usage and track progress",
			"Create an AI playbook for your most common tasks",
		},
	},
	DimensionVelocity: {
		title: "Accelerate Your AI Adoption",
		description: func(score int) string {
			return fmt.Sprintf("Your Change Velocity score of %d%% suggests room to increase the speed of AI transformation.", score)
		},
		actionItems: []string{
			"Set up rapid experimentation sprints for new AI tools",
			"Create a fast-track approval process for AI pilots",
			"Build resilience through small, frequent iterations",
			"Establish clear success metrics for AI initiatives",
		},
	},
}

var priorityOrder = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// GenerateRecommendations derives one recommendation per dimension scoring
// below 80, ordered high priority first. Dimension order is preserved within
// a priority band.
func GenerateRecommendations(dimensionScores []DimensionScore) []Recommendation {
	recommendations := []Recommendation{}

	for _, dim := range dimensionScores {
		switch {
		case dim.Score < 40:
			recommendations = append(recommendations, buildRecommendation(dim, PriorityHigh))
		case dim.Score < 60:
			recommendations = append(recommendations, buildRecommendation(dim, PriorityMedium))
		case dim.Score < 80:
			recommendations = append(recommendations, buildRecommendation(dim, PriorityLow))
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return priorityOrder[recommendations[i].Priority] < priorityOrder[recommendations[j].Priority]
	})
	return recommendations
}

func buildRecommendation(dim DimensionScore, priority Priority) Recommendation {
	var title, description string
	var items []string

	if tmpl, ok := recommendationTemplates[dim.Dimension]; ok {
		title = tmpl.title
		description = tmpl.description(dim.Score)
		items = tmpl.actionItems
	} else {
		title = fmt.Sprintf("Improve %s", dim.Name)
		description = fmt.Sprintf("Your score of %d%% indicates opportunity for improvement.", dim.Score)
		items = []string{
			"Identify specific areas for improvement",
			"Create an action plan",
			"Track progress weekly",
		}
	}

	// Higher priority keeps more action items.
	limit := 2
	switch priority {
	case PriorityHigh:
		limit = 4
	case PriorityMedium:
		limit = 3
	}
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]string, len(items))
	copy(out, items)

	return Recommendation{
		Priority:        priority,
		Dimension:       dim.Dimension,
		Title:           title,
		Description:     description,
		ActionItems:     out,
		EstimatedImpact: priority,
	}
}
