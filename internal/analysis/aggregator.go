package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"intervue/internal/catalog"
	"intervue/internal/interview"
	"intervue/internal/llm"
)

// Aggregator produces the session-level final report.
type Aggregator struct {
	provider llm.Provider
	config   Config
}

// NewAggregator creates an Aggregator.
func NewAggregator(provider llm.Provider, cfg Config) *Aggregator {
	return &Aggregator{provider: provider, config: cfg}
}

// Aggregate computes the authoritative numeric roll-up locally, asks the
// backend for the narrative report, and overrides the backend's numeric
// fields with the local values. The backend is trusted for themes,
// feedback, and category; never for arithmetic.
func (a *Aggregator) Aggregate(ctx context.Context, s *interview.Session, lang string) (*interview.FinalAnalysis, error) {
	avg := AverageScore(s.Questions)
	strengths, improvements := TopThemes(s.Questions, a.config.TopThemes)
	category := catalog.CategorizeScore(avg, s.Difficulty.ScoreThresholds)

	ctx = llm.WithPurpose(ctx, "final-report")

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: finalSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFinalPrompt(s, lang, avg, strengths, improvements, category)},
		},
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate final report: %w", err)
	}

	cleaned := StripFences(resp.Text)
	if err := validateAgainst("final-analysis", finalSchemaDef, []byte(cleaned)); err != nil {
		return nil, &ErrMalformedAnalysis{Raw: resp.Text, Err: err}
	}

	// Numeric fields decode through floats; they are about to be
	// overridden, so a fractional echo from the backend must not fail
	// the parse.
	var raw struct {
		StrongAreas      []string `json:"strongAreas"`
		ImprovementAreas []string `json:"improvementAreas"`
		OverallFeedback  string   `json:"overallFeedback"`
		ScoreCategory    string   `json:"scoreCategory"`
	}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, &ErrMalformedAnalysis{Raw: resp.Text, Err: err}
	}

	// The computed values always win over whatever the backend echoed.
	return &interview.FinalAnalysis{
		AverageScore:       avg,
		TotalQuestions:     s.Difficulty.QuestionsCount,
		CompletedQuestions: s.AnsweredCount(),
		StrongAreas:        raw.StrongAreas,
		ImprovementAreas:   raw.ImprovementAreas,
		OverallFeedback:    raw.OverallFeedback,
		ScoreCategory:      catalog.Category(raw.ScoreCategory),
	}, nil
}

// AverageScore returns the rounded mean score over analyzed questions,
// or 0 if none are analyzed.
func AverageScore(questions []interview.Question) int {
	total, count := 0, 0
	for _, q := range questions {
		if q.Analysis != nil {
			total += q.Analysis.Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}

// TopThemes extracts the most frequent strength and improvement strings
// across analyzed questions. Ties break by first-encountered order.
func TopThemes(questions []interview.Question, n int) (strengths, improvements []string) {
	var allStrengths, allImprovements []string
	for _, q := range questions {
		if q.Analysis == nil {
			continue
		}
		allStrengths = append(allStrengths, q.Analysis.Strengths...)
		allImprovements = append(allImprovements, q.Analysis.Improvements...)
	}
	return topFrequent(allStrengths, n), topFrequent(allImprovements, n)
}

func topFrequent(items []string, n int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for i, item := range items {
		if _, ok := counts[item]; !ok {
			firstSeen[item] = i
			order = append(order, item)
		}
		counts[item]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}
