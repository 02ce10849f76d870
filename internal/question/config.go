package question

// MaxUniqueQuestions caps the dedup set. Once this many distinct questions
// have been issued in one process, generation fails with ErrExhausted
// rather than looping further.
const MaxUniqueQuestions = 100

// Config controls the behavior of the Generator.
type Config struct {
	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature controls output randomness. Generation runs hot so
	// retries actually produce different questions.
	Temperature float64

	// MaxAttempts bounds the duplicate-retry loop for a single Generate
	// call. Transport errors are never retried.
	MaxAttempts int
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.8,
		MaxAttempts: MaxUniqueQuestions,
	}
}
