package catalog

// ScoreThresholds are the ascending cutoffs that map a 0-100 score to a
// category. A score qualifies for the highest band it meets or exceeds.
type ScoreThresholds struct {
	Poor      int `yaml:"poor"`
	Average   int `yaml:"average"`
	Good      int `yaml:"good"`
	Excellent int `yaml:"excellent"`
}

// Difficulty is one entry in the static difficulty catalog. It controls
// question count, pacing, the minimum answer length, and the scoring bands.
type Difficulty struct {
	ID                  string          `yaml:"id"`
	Label               Label           `yaml:"label"`
	QuestionsCount      int             `yaml:"questions_count"`
	TimePerQuestion     int             `yaml:"time_per_question"` // minutes, advisory
	MinimumAnswerLength int             `yaml:"minimum_answer_length"`
	ScoreThresholds     ScoreThresholds `yaml:"score_thresholds"`
	PromptModifier      Label           `yaml:"prompt_modifier"`
}

// Category is a four-level score band.
type Category string

const (
	CategoryPoor      Category = "poor"
	CategoryAverage   Category = "average"
	CategoryGood      Category = "good"
	CategoryExcellent Category = "excellent"
)

// CategorizeScore maps a score to the highest band it qualifies for.
// Scores below the average cutoff are poor.
func CategorizeScore(score int, t ScoreThresholds) Category {
	switch {
	case score >= t.Excellent:
		return CategoryExcellent
	case score >= t.Good:
		return CategoryGood
	case score >= t.Average:
		return CategoryAverage
	default:
		return CategoryPoor
	}
}
