// Package chat implements the free-form practice conversation that runs
// outside interview sessions.
package chat

import (
	"context"
	"strings"

	"intervue/internal/llm"
)

const (
	systemPromptEN = "You are a helpful assistant. Always respond in English."
	systemPromptES = "Eres un asistente útil. Responde siempre en español."

	temperature = 0.7
	maxTokens   = 1024
)

// Chat is a multi-turn conversation with the model. It keeps the full
// exchange so the model sees prior turns.
type Chat struct {
	provider llm.Provider
	language string
	history  []llm.Message
}

// New creates a Chat in the given language ("en" or "es").
func New(provider llm.Provider, language string) *Chat {
	return &Chat{provider: provider, language: language}
}

func systemPrompt(language string) string {
	if language == "es" {
		return systemPromptES
	}
	return systemPromptEN
}

// Send submits a user message and returns the assistant's reply. A failed
// call leaves the history unchanged so the same message can be resent.
func (c *Chat) Send(ctx context.Context, message string) (string, error) {
	messages := append(append([]llm.Message{}, c.history...), llm.Message{
		Role:    llm.RoleUser,
		Content: message,
	})

	resp, err := c.provider.Generate(llm.WithPurpose(ctx, "chat"), llm.Request{
		System:      systemPrompt(c.language),
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(resp.Text)
	c.history = append(messages, llm.Message{Role: llm.RoleAssistant, Content: reply})
	return reply, nil
}

// History returns the conversation so far.
func (c *Chat) History() []llm.Message {
	return c.history
}
