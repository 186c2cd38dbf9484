package scoring

// maturityNames maps maturity levels 0 through 10 to their display names.
var maturityNames = [...]string{
	"AI Unaware",
	"AI Curious",
	"AI Aware",
	"AI Exploring",
	"AI Adopting",
	"AI Practicing",
	"AI Proficient",
	"AI Advanced",
	"AI Champion",
	"AI Leader",
	"AI Visionary",
}

// LevelForScore classifies a 0-100 score into its qualitative level.
func LevelForScore(score int) ScoreLevel {
	switch {
	case score < 20:
		return LevelLow
	case score < 40:
		return LevelDeveloping
	case score < 60:
		return LevelProficient
	case score < 80:
		return LevelAdvanced
	default:
		return LevelExpert
	}
}

// MaturityLevelForScore maps an overall 0-100 score onto the 0-10 maturity
// ladder. Scores of 100 land on level 10, not 11.
func MaturityLevelForScore(overall int) int {
	level := overall / 10
	if level > 10 {
		level = 10
	}
	if level < 0 {
		level = 0
	}
	return level
}

// MaturityName returns the display name for a maturity level. Levels above
// 10 are capped at "AI Visionary".
func MaturityName(level int) string {
	if level > 10 {
		level = 10
	}
	if level < 0 {
		level = 0
	}
	return maturityNames[level]
}
