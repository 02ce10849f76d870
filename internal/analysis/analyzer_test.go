package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervue/internal/catalog"
	"intervue/internal/llm"
)

func testAnalyzeInput(t *testing.T, answer string) AnalyzeInput {
	t.Helper()
	career, err := catalog.GetCareer("data-scientist")
	require.NoError(t, err)
	diff, err := catalog.GetDifficulty("beginner")
	require.NoError(t, err)
	return AnalyzeInput{
		Question:   "Explain overfitting.",
		Answer:     answer,
		Career:     career,
		Difficulty: diff,
		Language:   "en",
	}
}

func longAnswer(n int) string {
	return strings.Repeat("a", n)
}

const validAnalysisJSON = `{
	"score": 82,
	"strengths": ["clear structure", "good examples"],
	"improvements": ["mention regularization"],
	"overallFeedback": "Solid answer overall."
}`

func TestAnalyze_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validAnalysisJSON})
	analyzer := NewAnalyzer(mock, DefaultConfig())

	out, err := analyzer.Analyze(context.Background(), testAnalyzeInput(t, longAnswer(120)))
	require.NoError(t, err)
	assert.Equal(t, 82, out.Score)
	assert.Equal(t, []string{"clear structure", "good examples"}, out.Strengths)
	assert.Equal(t, "Solid answer overall.", out.OverallFeedback)
}

func TestAnalyze_TooShort_NoBackendCall(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validAnalysisJSON})
	analyzer := NewAnalyzer(mock, DefaultConfig())

	_, err := analyzer.Analyze(context.Background(), testAnalyzeInput(t, "too short"))

	var tooShort *ErrAnswerTooShort
	require.ErrorAs(t, err, &tooShort)
	assert.Equal(t, 100, tooShort.Minimum)
	assert.Equal(t, 0, mock.CallCount(), "gate must run before any backend call")
}

func TestAnalyze_GateBoundary(t *testing.T) {
	// Exactly the minimum passes; one short fails. Surrounding
	// whitespace does not count.
	min := 100

	assert.NoError(t, CheckAnswerLength(longAnswer(min), min))
	assert.NoError(t, CheckAnswerLength("   "+longAnswer(min)+"   ", min))

	err := CheckAnswerLength(longAnswer(min-1), min)
	var tooShort *ErrAnswerTooShort
	require.ErrorAs(t, err, &tooShort)
	assert.Equal(t, min, tooShort.Minimum)
}

func TestAnalyze_ClampsScore(t *testing.T) {
	tests := []struct {
		name  string
		score string
		want  int
	}{
		{"above range", "150", 100},
		{"below range", "-20", 0},
		{"fractional", "87.6", 88},
		{"in range", "55", 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{
				Text: `{"score": ` + tt.score + `, "strengths": [], "improvements": [], "overallFeedback": "ok"}`,
			})
			analyzer := NewAnalyzer(mock, DefaultConfig())

			out, err := analyzer.Analyze(context.Background(), testAnalyzeInput(t, longAnswer(120)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Score)
		})
	}
}

func TestAnalyze_StripsFences(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "```json\n" + validAnalysisJSON + "\n```",
	})
	analyzer := NewAnalyzer(mock, DefaultConfig())

	out, err := analyzer.Analyze(context.Background(), testAnalyzeInput(t, longAnswer(120)))
	require.NoError(t, err)
	assert.Equal(t, 82, out.Score)
}

func TestAnalyze_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"prose", "The candidate did quite well, I would say 80/100."},
		{"missing fields", `{"score": 80}`},
		{"wrong types", `{"score": "eighty", "strengths": [], "improvements": [], "overallFeedback": "ok"}`},
		{"strengths not array", `{"score": 80, "strengths": "clear", "improvements": [], "overallFeedback": "ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Text: tt.text})
			analyzer := NewAnalyzer(mock, DefaultConfig())

			_, err := analyzer.Analyze(context.Background(), testAnalyzeInput(t, longAnswer(120)))

			var malformed *ErrMalformedAnalysis
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.text, malformed.Raw, "raw text must be preserved for diagnostics")
		})
	}
}

func TestAnalyze_BackendError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrBackend{Status: 502, Message: "bad gateway"}})
	analyzer := NewAnalyzer(mock, DefaultConfig())

	_, err := analyzer.Analyze(context.Background(), testAnalyzeInput(t, longAnswer(120)))

	var be *llm.ErrBackend
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 502, be.Status)
	assert.Equal(t, 1, mock.CallCount(), "no retry on transport errors")
}

func TestAnalyze_SpanishPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validAnalysisJSON})
	analyzer := NewAnalyzer(mock, DefaultConfig())

	in := testAnalyzeInput(t, longAnswer(120))
	in.Language = "es"
	_, err := analyzer.Analyze(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	prompt := mock.Calls[0].Messages[0].Content
	assert.Contains(t, prompt, "Científico de Datos")
	assert.Contains(t, prompt, "evalúa la siguiente respuesta")
}
