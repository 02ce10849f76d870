package llm

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first"},
		MockResponse{Text: "second"},
	)

	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "first" {
		t.Errorf("expected first, got %q", resp.Text)
	}

	resp, _ = mock.Generate(context.Background(), Request{})
	if resp.Text != "second" {
		t.Errorf("expected second, got %q", resp.Text)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var be *ErrBackend
	if !errors.As(err, &be) {
		t.Errorf("expected ErrBackend on empty queue, got %v", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestMockProvider_Error(t *testing.T) {
	wantErr := &ErrBackend{Status: 500, Message: "boom"}
	mock := NewMockProvider(MockResponse{Err: wantErr})

	_, err := mock.Generate(context.Background(), Request{})
	var be *ErrBackend
	if !errors.As(err, &be) {
		t.Fatalf("expected ErrBackend, got %v", err)
	}
	if be.Status != 500 {
		t.Errorf("expected status 500, got %d", be.Status)
	}
}

func TestWithLogging_PassThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "hello"})
	logged := WithLogging(mock, zap.NewNop())

	ctx := WithPurpose(context.Background(), "test")
	resp, err := logged.Generate(ctx, Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "hello" {
		t.Errorf("expected hello, got %q", resp.Text)
	}
	if logged.ModelID() != "mock" {
		t.Errorf("expected mock model ID, got %q", logged.ModelID())
	}
}

func TestErrBackend_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *ErrBackend
		want string
	}{
		{"with status", &ErrBackend{Status: 429, Message: "rate limited"}, "backend error (status 429): rate limited"},
		{"without status", &ErrBackend{Message: "connection refused"}, "backend error: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPurposeFrom(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("expected unknown, got %q", got)
	}
	ctx := WithPurpose(context.Background(), "question-gen")
	if got := PurposeFrom(ctx); got != "question-gen" {
		t.Errorf("expected question-gen, got %q", got)
	}
}

func TestBuildOpenAIMessages(t *testing.T) {
	req := Request{
		System: "system prompt",
		Messages: []Message{
			{Role: RoleUser, Content: "hi"},
			{Role: RoleAssistant, Content: "hello"},
		},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Role != "system" || msgs[0].Content != "system prompt" {
		t.Errorf("unexpected system message: %+v", msgs[0])
	}
	if msgs[1].Role != "user" {
		t.Errorf("expected user role, got %q", msgs[1].Role)
	}
	if msgs[2].Role != "assistant" {
		t.Errorf("expected assistant role, got %q", msgs[2].Role)
	}
}
