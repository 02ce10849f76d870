// Package question produces interview questions, enforcing process-wide
// uniqueness through a bounded duplicate-retry loop.
package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"intervue/internal/catalog"
	"intervue/internal/llm"
)

// ErrExhausted indicates the duplicate-retry budget was spent without
// producing a novel question. It is a hard failure for the current
// session's progression; no automatic attempts follow.
var ErrExhausted = errors.New("question generation exhausted: unable to produce a unique question")

// Input holds all context needed to generate one question.
type Input struct {
	Career     catalog.Career
	Difficulty catalog.Difficulty

	// PreviousQuestions is the literal text of every question already
	// asked in this session, in order. Embedded in the prompt so the
	// model steers away from them.
	PreviousQuestions []string

	// Language selects the prompt localization ("en" or "es").
	Language string
}

// Generator produces a single new interview question.
type Generator interface {
	Generate(ctx context.Context, in Input) (string, error)
}

// LLMGenerator implements Generator using a backend provider and an
// explicit dedup set owned by the caller.
type LLMGenerator struct {
	provider llm.Provider
	dedup    *DedupSet
	config   Config
}

// New creates a new LLMGenerator.
func New(provider llm.Provider, dedup *DedupSet, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, dedup: dedup, config: cfg}
}

// Generate asks the backend for a question, retrying on duplicates until
// a novel one arrives or the budget runs out. Transport errors surface
// immediately. The accepted question is recorded in the dedup set and
// returned in its original casing.
func (g *LLMGenerator) Generate(ctx context.Context, in Input) (string, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	for attempt := 0; attempt < g.config.MaxAttempts; attempt++ {
		if g.dedup.Len() >= MaxUniqueQuestions {
			return "", ErrExhausted
		}

		resp, err := g.provider.Generate(ctx, req)
		if err != nil {
			return "", fmt.Errorf("generate question: %w", err)
		}

		text := strings.TrimSpace(resp.Text)
		if text == "" || g.dedup.Contains(text) {
			continue
		}

		g.dedup.Add(text)
		return text, nil
	}

	return "", ErrExhausted
}
