// Package interview holds the interview session domain model and the
// state machine that drives a session from setup to completion.
package interview

import (
	"time"

	"intervue/internal/catalog"
)

// AnswerAnalysis is the structured score and feedback for one answer.
// Produced exactly once per question, immutable thereafter.
type AnswerAnalysis struct {
	// Score is clamped into [0, 100].
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	OverallFeedback string   `json:"overallFeedback"`
}

// Question is one generated interview question. Answer and Analysis are
// set once when the answer is analyzed.
type Question struct {
	ID        string          `json:"id"`
	Text      string          `json:"question"`
	Answer    string          `json:"answer,omitempty"`
	Analysis  *AnswerAnalysis `json:"analysis,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// FinalAnalysis is the session-level report produced once at completion.
// The three numeric fields are always computed locally, never taken from
// the backend.
type FinalAnalysis struct {
	AverageScore       int              `json:"averageScore"`
	TotalQuestions     int              `json:"totalQuestions"`
	CompletedQuestions int              `json:"completedQuestions"`
	StrongAreas        []string         `json:"strongAreas"`
	ImprovementAreas   []string         `json:"improvementAreas"`
	OverallFeedback    string           `json:"overallFeedback"`
	ScoreCategory      catalog.Category `json:"scoreCategory"`
}

// Session is one end-to-end interview attempt. Questions are in insertion
// order, which is chronological order. Once Final is attached the session
// is immutable and EndTime is set.
type Session struct {
	ID                   string             `json:"id"`
	Career               catalog.Career     `json:"career"`
	Difficulty           catalog.Difficulty `json:"difficulty"`
	Language             string             `json:"language"`
	Questions            []Question         `json:"questions"`
	CurrentQuestionIndex int                `json:"currentQuestionIndex"`
	StartTime            time.Time          `json:"startTime"`
	EndTime              time.Time          `json:"endTime,omitzero"`
	Final                *FinalAnalysis     `json:"finalAnalysis,omitempty"`
}

// CurrentQuestion returns the question at the current index, or nil.
func (s *Session) CurrentQuestion() *Question {
	if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentQuestionIndex]
}

// AnsweredCount returns the number of questions carrying an analysis.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, q := range s.Questions {
		if q.Analysis != nil {
			n++
		}
	}
	return n
}

// QuestionTexts returns the text of every question asked so far, in order.
func (s *Session) QuestionTexts() []string {
	out := make([]string, len(s.Questions))
	for i, q := range s.Questions {
		out[i] = q.Text
	}
	return out
}
