package scoring

// GlueIQ assessment definition: 5 adaptability dimensions, 30 questions.

// GlueIQDimensions is the dimension registry in presentation order.
func GlueIQDimensions() []Dimension {
	return []Dimension{
		{
			Key:         DimensionIndividual,
			Name:        "Individual Readiness",
			Description: "Personal AI literacy, technology comfort, and growth mindset",
			Weight:      1.0,
			Color:       "#06B6D4",
		},
		{
			Key:         DimensionLeadership,
			Name:        "Leadership Capability",
			Description: "Ability to lead through change and inspire AI adoption in others",
			Weight:      1.0,
			Color:       "#8B5CF6",
		},
		{
			Key:         DimensionCultural,
			Name:        "Cultural Alignment",
			Description: "Innovation embrace, collaboration, and psychological safety for experimentation",
			Weight:      1.0,
			Color:       "#10B981",
		},
		{
			Key:         DimensionEmbedding,
			Name:        "Behavior Embedding",
			Description: "Habit formation, sustainability, and process integration of AI practices",
			Weight:      1.0,
			Color:       "#F59E0B",
		},
		{
			Key:         DimensionVelocity,
			Name:        "Change Velocity",
			Description: "Speed of adoption, resilience, and adaptability to AI transformation",
			Weight:      1.0,
			Color:       "#EF4444",
		},
	}
}

// GlueIQQuestions is the full question bank in presentation order.
func GlueIQQuestions() []Question {
	return []Question{
		// Individual Readiness
		{
			Code:         "IND_001",
			Dimension:    DimensionIndividual,
			Subdimension: "ai_literacy",
			Text:         "How would you describe your current understanding of AI and its capabilities?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "No understanding"},
				{Value: 25, Label: "Basic awareness"},
				{Value: 50, Label: "General understanding"},
				{Value: 75, Label: "Working knowledge"},
				{Value: 100, Label: "Deep expertise"},
			},
			Weight:   1.2,
			Required: true,
		},
		{
			Code:         "IND_002",
			Dimension:    DimensionIndividual,
			Subdimension: "tech_comfort",
			Text:         "When a new technology tool is introduced at work, how do you typically respond?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Avoid it"},
				{Value: 25, Label: "Wait and see"},
				{Value: 50, Label: "Cautiously explore"},
				{Value: 75, Label: "Eager to learn"},
				{Value: 100, Label: "Early adopter"},
			},
			Weight:   1.0,
			Required: true,
		},
		{
			Code:         "IND_003",
			Dimension:    DimensionIndividual,
			Subdimension: "growth_mindset",
			Text:         "How do you view your ability to learn new skills at this stage of your career?",
			AnswerType:   AnswerFearToConfidence,
			Weight:       1.3,
			ScaleMin:     0,
			ScaleMax:     100,
			Required:     true,
		},
		{
			Code:         "IND_004",
			Dimension:    DimensionIndividual,
			Subdimension: "learning_agility",
			Text:         "In the past year, how many new digital tools or AI-powered applications have you learned to use?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "None"},
				{Value: 25, Label: "1-2 tools"},
				{Value: 50, Label: "3-5 tools"},
				{Value: 75, Label: "6-10 tools"},
				{Value: 100, Label: "More than 10"},
			},
			Weight:   1.0,
			Required: true,
		},
		{
			Code:         "IND_005",
			Dimension:    DimensionIndividual,
			Subdimension: "ai_experience",
			Text:         "How often do you currently use AI tools (like ChatGPT, Copilot, or AI features in apps) in your work?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Never"},
				{Value: 20, Label: "Rarely"},
				{Value: 40, Label: "Occasionally"},
				{Value: 60, Label: "Weekly"},
				{Value: 80, Label: "Daily"},
				{Value: 100, Label: "Constantly"},
			},
			Weight:   1.1,
			Required: true,
		},
		{
			Code:         "IND_006",
			Dimension:    DimensionIndividual,
			Subdimension: "self_awareness",
			Text:         "How confident are you in identifying which parts of your job could be enhanced or automated by AI?",
			AnswerType:   AnswerScale,
			Weight:       0.9,
			ScaleMin:     0,
			ScaleMax:     100,
			Required:     true,
		},

		// Leadership Capability
		{
			Code:         "LEAD_001",
			Dimension:    DimensionLeadership,
			Subdimension: "change_leadership",
			Text:         "When your team faces a significant change, how do you typically approach leading them through it?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Struggle with change"},
				{Value: 25, Label: "Follow instructions"},
				{Value: 50, Label: "Communicate clearly"},
				{Value: 75, Label: "Inspire and support"},
				{Value: 100, Label: "Champion change"},
			},
			Weight:   1.2,
			Required: true,
		},
		{
			Code:         "LEAD_002",
			Dimension:    DimensionLeadership,
			Subdimension: "vision_communication",
			Text:         "How effectively can you articulate a vision for how AI will transform your team's work?",
			AnswerType:   AnswerFearToConfidence,
			Weight:       1.1,
			ScaleMin:     0,
			ScaleMax:     100,
			Required:     true,
		},
		{
			Code:         "LEAD_003",
			Dimension:    DimensionLeadership,
			Subdimension: "coaching",
			Text:         "How often do you help colleagues or team members learn new technologies or AI tools?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Never"},
				{Value: 25, Label: "Rarely"},
				{Value: 50, Label: "Sometimes"},
				{Value: 75, Label: "Often"},
				{Value: 100, Label: "Always"},
			},
			Weight:   1.0,
			Required: true,
		},
		{
			Code:         "LEAD_004",
			Dimension:    DimensionLeadership,
			Subdimension: "psychological_safety",
			Text:         "How comfortable would your team feel coming to you about AI-related concerns or fears?",
			AnswerType:   AnswerScale,
			Weight:       1.0,
			ScaleMin:     0,
			ScaleMax:     100,
			Required:     true,
		},
		{
			Code:         "LEAD_005",
			Dimension:    DimensionLeadership,
			Subdimension: "decision_making",
			Text:         "When evaluating AI solutions for your team, how do you approach the decision?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Avoid decisions"},
				{Value: 25, Label: "Follow mandates"},
				{Value: 50, Label: "Gather input"},
				{Value: 75, Label: "Strategic analysis"},
				{Value: 100, Label: "Innovative leadership"},
			},
			Weight:   1.1,
			Required: true,
		},
		{
			Code:         "LEAD_006",
			Dimension:    DimensionLeadership,
			Subdimension: "influence",
			Text:         "How successful have you been at influencing others in your organization to adopt new technologies?",
			AnswerType:   AnswerScale,
			Weight:       0.9,
			ScaleMin:     0,
			ScaleMax:     100,
			Required:     true,
		},

		// Cultural Alignment
		{
			Code:         "CULT_001",
			Dimension:    DimensionCultural,
			Subdimension: "innovation_embrace",
			Text:         "How does your team typically respond to innovative ideas or new ways of working?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Resistant"},
				{Value: 25, Label: "Cautious"},
				{Value: 50, Label: "Open"},
				{Value: 75, Label: "Encouraging"},
				{Value: 100, Label: "Innovation-driven"},
			},
			Weight:   1.2,
			Required: true,
		},
		{
			Code:         "CULT_002",
			Dimension:    DimensionCultural,
			Subdimension: "collaboration",
			Text:         "How effectively does your organization share knowledge and best practices about AI and new technologies?",
			AnswerType:   AnswerScale,
			Weight:       1.0,
			ScaleMin:     0,
			ScaleMax:     100,
			Required:     true,
		},
		{
			Code:         "CULT_003",
			Dimension:    DimensionCultural,
			Subdimension: "experimentation",
			Text:         "What happens in your organization when someone tries a new AI tool or approach and it doesn't work out?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Punished"},
				{Value: 25, Label: "Discouraged"},
				{Value: 50, Label: "Accepted"},
				{Value: 75, Label: "Learned from"},
				{Value: 100, Label: "Celebrated"},
			},
			Weight:   1.3,
			Required: true,
		},
		{
			Code:         "CULT_004",
			Dimension:    DimensionCultural,
			Subdimension: "trust",
			Text:         "How much do you trust AI systems to help you make better decisions in your work?",
			AnswerType:   AnswerFearToConfidence,
			Weight:       1.0,
			ScaleMin:     0,
			ScaleMax:     100,
			Required:     true,
		},
		{
			Code:         "CULT_005",
			Dimension:    DimensionCultural,
			Subdimension: "diversity_of_thought",
			Text:         "How often are diverse perspectives (technical, non-technical, different departments) included in AI decisions?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Never"},
				{Value: 25, Label: "Rarely"},
				{Value: 50, Label: "Sometimes"},
				{Value: 75, Label: "Often"},
				{Value: 100, Label: "Always"},
			},
			Weight:   0.9,
			Required: true,
		},
		{
			Code:         "CULT_006",
			Dimension:    DimensionCultural,
			Subdimension: "continuous_improvement",
			Text:         "How would you rate your organization's commitment to continuous learning and improvement around AI?",
			AnswerType:   AnswerScale,
			Weight:       1.0,
			ScaleMin:     0,
			ScaleMax:     100,
			Required:     true,
		},

		// Behavior Embedding
		{
			Code:         "EMB_001",
			Dimension:    DimensionEmbedding,
			Subdimension: "habit_formation",
			Text:         "When you learn a new AI tool or technique, how quickly does it become part of your regular workflow?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Never sticks"},
				{Value: 25, Label: "Takes months"},
				{Value: 50, Label: "A few weeks"},
				{Value: 75, Label: "Within a week"},
				{Value: 100, Label: "Immediately"},
			},
			Weight:   1.2,
			Required: true,
		},
		{
			Code:         "EMB_002",
			Dimension:    DimensionEmbedding,
			Subdimension: "process_integration",
			Text:         "How well are AI tools integrated into your team's standard operating procedures and workflows?",
			AnswerType:   AnswerScale,
			Weight:       1.1,
			ScaleMin:     0,
			ScaleMax:     100,
			Required:     true,
		},
		{
			Code:         "EMB_003",
			Dimension:    DimensionEmbedding,
			Subdimension: "sustainability",
			Text:         "When initial excitement about a new AI tool fades, how does usage typically evolve?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Abandoned"},
				{Value: 25, Label: "Declining"},
				{Value: 50, Label: "Maintained"},
				{Value: 75, Label: "Growing"},
				{Value: 100, Label: "Deepening"},
			},
			Weight:   1.0,
			Required: true,
		},
		{
			Code:         "EMB_004",
			Dimension:    DimensionEmbedding,
			Subdimension: "measurement",
			Text:         "How well do you track the impact and ROI of AI tools you've adopted?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Not at all"},
				{Value: 25, Label: "Anecdotally"},
				{Value: 50, Label: "Basic metrics"},
				{Value: 75, Label: "Comprehensive"},
				{Value: 100, Label: "Data-driven"},
			},
			Weight:   0.9,
			Required: true,
		},
		{
			Code:         "EMB_005",
			Dimension:    DimensionEmbedding,
			Subdimension: "reinforcement",
			Text:         "What systems or structures exist to reinforce continued AI adoption in your organization?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "None"},
				{Value: 25, Label: "Basic training"},
				{Value: 50, Label: "Ongoing support"},
				{Value: 75, Label: "Integrated systems"},
				{Value: 100, Label: "Cultural embedding"},
			},
			Weight:   1.0,
			Required: true,
		},
		{
			Code:         "EMB_006",
			Dimension:    DimensionEmbedding,
			Subdimension: "documentation",
			Text:         "How well documented are the AI tools, prompts, and best practices your team uses?",
			AnswerType:   AnswerScale,
			Weight:       0.8,
			ScaleMin:     0,
			ScaleMax:     100,
			Required:     true,
		},

		// Change Velocity
		{
			Code:         "VEL_001",
			Dimension:    DimensionVelocity,
			Subdimension: "adoption_speed",
			Text:         "How quickly can your team typically go from learning about a new AI capability to using it productively?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Months or more"},
				{Value: 25, Label: "1-2 months"},
				{Value: 50, Label: "2-4 weeks"},
				{Value: 75, Label: "1-2 weeks"},
				{Value: 100, Label: "Days"},
			},
			Weight:   1.2,
			Required: true,
		},
		{
			Code:         "VEL_002",
			Dimension:    DimensionVelocity,
			Subdimension: "resilience",
			Text:         "When an AI initiative doesn't go as planned, how does your team respond?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Give up"},
				{Value: 25, Label: "Hesitate"},
				{Value: 50, Label: "Regroup"},
				{Value: 75, Label: "Persist"},
				{Value: 100, Label: "Accelerate"},
			},
			Weight:   1.1,
			Required: true,
		},
		{
			Code:         "VEL_003",
			Dimension:    DimensionVelocity,
			Subdimension: "adaptability",
			Text:         "How confident are you in your ability to adapt if AI significantly changes your job role?",
			AnswerType:   AnswerFearToConfidence,
			Weight:       1.3,
			ScaleMin:     0,
			ScaleMax:     100,
			Required:     true,
		},
		{
			Code:         "VEL_004",
			Dimension:    DimensionVelocity,
			Subdimension: "iteration_speed",
			Text:         "How quickly does your team iterate on AI implementations based on feedback and results?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Never iterate"},
				{Value: 25, Label: "Annual reviews"},
				{Value: 50, Label: "Quarterly"},
				{Value: 75, Label: "Monthly"},
				{Value: 100, Label: "Weekly or faster"},
			},
			Weight:   1.0,
			Required: true,
		},
		{
			Code:         "VEL_005",
			Dimension:    DimensionVelocity,
			Subdimension: "momentum",
			Text:         "How would you describe the current momentum of AI adoption in your organization?",
			AnswerType:   AnswerMultiChoice,
			Options: []QuestionOption{
				{Value: 0, Label: "Stalled"},
				{Value: 25, Label: "Slow"},
				{Value: 50, Label: "Steady"},
				{Value: 75, Label: "Accelerating"},
				{Value: 100, Label: "Transformational"},
			},
			Weight:   1.0,
			Required: true,
		},
		{
			Code:         "VEL_006",
			Dimension:    DimensionVelocity,
			Subdimension: "future_readiness",
			Text:         "How prepared do you feel for the next wave of AI advancements (AGI, autonomous agents, etc.)?",
			AnswerType:   AnswerScale,
			Weight:       0.9,
			ScaleMin:     0,
			ScaleMax:     100,
			Required:     true,
		},
	}
}

// DefaultConfig returns the standard GlueIQ assessment definition.
func DefaultConfig() *Config {
	return NewConfig(GlueIQDimensions(), GlueIQQuestions())
}
