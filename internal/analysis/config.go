package analysis

// Config controls the Analyzer and Aggregator backend calls.
type Config struct {
	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature controls output randomness. Scoring runs cooler than
	// generation so repeated evaluations stay consistent.
	Temperature float64

	// TopThemes is how many recurring strength/improvement themes the
	// aggregator extracts per list.
	TopThemes int
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
		TopThemes:   3,
	}
}
