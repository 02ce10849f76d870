package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervue/internal/catalog"
	"intervue/internal/interview"
	"intervue/internal/llm"
)

func analyzedQuestion(text string, score int, strengths, improvements []string) interview.Question {
	return interview.Question{
		ID:        text,
		Text:      text,
		Answer:    "an answer",
		CreatedAt: time.Now(),
		Analysis: &interview.AnswerAnalysis{
			Score:           score,
			Strengths:       strengths,
			Improvements:    improvements,
			OverallFeedback: "fine",
		},
	}
}

func testSession(t *testing.T, questions ...interview.Question) *interview.Session {
	t.Helper()
	career, err := catalog.GetCareer("teacher")
	require.NoError(t, err)
	diff, err := catalog.GetDifficulty("beginner")
	require.NoError(t, err)
	return &interview.Session{
		ID:         "test-session",
		Career:     career,
		Difficulty: diff,
		Questions:  questions,
		StartTime:  time.Now(),
	}
}

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   int
	}{
		{"none answered", nil, 0},
		{"single", []int{70}, 70},
		{"exact mean", []int{60, 80, 100}, 80},
		{"rounded up", []int{70, 71}, 71}, // 70.5 rounds to 71
		{"rounded down", []int{70, 70, 71}, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var qs []interview.Question
			for _, s := range tt.scores {
				qs = append(qs, analyzedQuestion("q", s, nil, nil))
			}
			// An unanswered question never contributes to the mean.
			qs = append(qs, interview.Question{Text: "unanswered"})

			assert.Equal(t, tt.want, AverageScore(qs))
		})
	}
}

func TestTopThemes_FrequencyAndTies(t *testing.T) {
	qs := []interview.Question{
		analyzedQuestion("q1", 70, []string{"A", "B"}, []string{"X"}),
		analyzedQuestion("q2", 80, []string{"A", "C"}, []string{"Y"}),
		analyzedQuestion("q3", 90, []string{"A"}, []string{"X"}),
	}

	strengths, improvements := TopThemes(qs, 3)

	// "A" has frequency 3 and ranks first; "B" and "C" tie at 1 and
	// keep first-seen order.
	assert.Equal(t, []string{"A", "B", "C"}, strengths)
	assert.Equal(t, []string{"X", "Y"}, improvements)
}

func TestTopThemes_Truncates(t *testing.T) {
	qs := []interview.Question{
		analyzedQuestion("q1", 70, []string{"A", "B", "C", "D", "E"}, nil),
	}
	strengths, _ := TopThemes(qs, 3)
	assert.Len(t, strengths, 3)
}

const validFinalJSON = `{
	"averageScore": 55,
	"totalQuestions": 99,
	"completedQuestions": 99,
	"strongAreas": ["communication", "detail", "honesty"],
	"improvementAreas": ["depth", "examples", "pacing"],
	"overallFeedback": "A promising candidate.",
	"scoreCategory": "good"
}`

func TestAggregate_OverridesBackendNumbers(t *testing.T) {
	// Backend reports nonsense numbers; the local computation wins.
	mock := llm.NewMockProvider(llm.MockResponse{Text: validFinalJSON})
	agg := NewAggregator(mock, DefaultConfig())

	s := testSession(t,
		analyzedQuestion("q1", 60, []string{"A"}, []string{"X"}),
		analyzedQuestion("q2", 80, []string{"A"}, []string{"X"}),
		analyzedQuestion("q3", 100, []string{"B"}, []string{"Y"}),
	)

	final, err := agg.Aggregate(context.Background(), s, "en")
	require.NoError(t, err)

	assert.Equal(t, 80, final.AverageScore)
	assert.Equal(t, 3, final.TotalQuestions)
	assert.Equal(t, 3, final.CompletedQuestions)
	assert.Equal(t, "A promising candidate.", final.OverallFeedback)
	assert.Equal(t, []string{"communication", "detail", "honesty"}, final.StrongAreas)
}

func TestAggregate_NoneAnswered(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validFinalJSON})
	agg := NewAggregator(mock, DefaultConfig())

	s := testSession(t, interview.Question{Text: "q1"}, interview.Question{Text: "q2"})

	final, err := agg.Aggregate(context.Background(), s, "en")
	require.NoError(t, err)
	assert.Equal(t, 0, final.AverageScore)
	assert.Equal(t, 0, final.CompletedQuestions)
}

func TestAggregate_PromptEmbedsComputedValues(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validFinalJSON})
	agg := NewAggregator(mock, DefaultConfig())

	s := testSession(t,
		analyzedQuestion("What is pedagogy?", 60, []string{"A"}, []string{"X"}),
		analyzedQuestion("Describe your classroom.", 80, []string{"A"}, []string{"X"}),
		analyzedQuestion("How do you grade?", 100, []string{"B"}, []string{"Y"}),
	)

	_, err := agg.Aggregate(context.Background(), s, "en")
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	prompt := mock.Calls[0].Messages[0].Content
	assert.Contains(t, prompt, "Average Score: 80%")
	assert.Contains(t, prompt, "Question 2: Describe your classroom.")
	// 80 against beginner thresholds (good at 75, excellent at 85).
	assert.Contains(t, prompt, `"scoreCategory": "good"`)
}

func TestAggregate_Malformed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: `{"strongAreas": "not an array"}`})
	agg := NewAggregator(mock, DefaultConfig())

	s := testSession(t, analyzedQuestion("q1", 60, nil, nil))

	_, err := agg.Aggregate(context.Background(), s, "en")
	var malformed *ErrMalformedAnalysis
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Raw, "not an array")
}
