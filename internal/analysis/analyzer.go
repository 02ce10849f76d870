// Package analysis scores answers and aggregates sessions into a final
// report. Backend JSON is validated structurally before use; a response
// that fails validation surfaces with its raw text preserved rather than
// being coerced into a default score.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"intervue/internal/catalog"
	"intervue/internal/interview"
	"intervue/internal/llm"
)

// AnalyzeInput holds everything needed to score one answer.
type AnalyzeInput struct {
	Question   string
	Answer     string
	Career     catalog.Career
	Difficulty catalog.Difficulty
	Language   string
}

// Analyzer scores a single answer through the backend.
type Analyzer struct {
	provider llm.Provider
	config   Config
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(provider llm.Provider, cfg Config) *Analyzer {
	return &Analyzer{provider: provider, config: cfg}
}

// Analyze validates the answer length, asks the backend for a structured
// evaluation, and returns the validated analysis with the score clamped
// into [0, 100]. Malformed backend output is never retried; duplication
// is a recoverable soft condition, a broken contract is not.
func (a *Analyzer) Analyze(ctx context.Context, in AnalyzeInput) (*interview.AnswerAnalysis, error) {
	if err := CheckAnswerLength(in.Answer, in.Difficulty.MinimumAnswerLength); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "answer-analysis")

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: answerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnswerPrompt(in)},
		},
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze answer: %w", err)
	}

	cleaned := StripFences(resp.Text)
	if err := validateAgainst("answer-analysis", answerSchemaDef, []byte(cleaned)); err != nil {
		return nil, &ErrMalformedAnalysis{Raw: resp.Text, Err: err}
	}

	// The schema allows any numeric score, so decode through a float
	// before rounding and clamping.
	var raw struct {
		Score           float64  `json:"score"`
		Strengths       []string `json:"strengths"`
		Improvements    []string `json:"improvements"`
		OverallFeedback string   `json:"overallFeedback"`
	}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, &ErrMalformedAnalysis{Raw: resp.Text, Err: err}
	}

	return &interview.AnswerAnalysis{
		Score:           clampScore(int(math.Round(raw.Score))),
		Strengths:       raw.Strengths,
		Improvements:    raw.Improvements,
		OverallFeedback: raw.OverallFeedback,
	}, nil
}

// AnalyzeAnswer is a positional-argument form of Analyze. It satisfies
// the state machine's Analyzer interface.
func (a *Analyzer) AnalyzeAnswer(ctx context.Context, q, answer string, career catalog.Career, diff catalog.Difficulty, lang string) (*interview.AnswerAnalysis, error) {
	return a.Analyze(ctx, AnalyzeInput{
		Question:   q,
		Answer:     answer,
		Career:     career,
		Difficulty: diff,
		Language:   lang,
	})
}

// clampScore forces a score into [0, 100]. Backends occasionally return
// out-of-range values.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
