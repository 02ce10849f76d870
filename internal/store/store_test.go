package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"intervue/internal/catalog"
	"intervue/internal/interview"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func completedSession(t *testing.T, id string, endedAt time.Time, avg int) *interview.Session {
	t.Helper()
	career, err := catalog.GetCareer("software-engineer")
	if err != nil {
		t.Fatalf("get career: %v", err)
	}
	diff, err := catalog.GetDifficulty("beginner")
	if err != nil {
		t.Fatalf("get difficulty: %v", err)
	}

	return &interview.Session{
		ID:         id,
		Career:     career,
		Difficulty: diff,
		Language:   "en",
		StartTime:  endedAt.Add(-5 * time.Minute),
		EndTime:    endedAt,
		Questions: []interview.Question{
			{
				ID:        id + "-q1",
				Text:      "Tell me about a project you are proud of.",
				Answer:    "I built a scheduling service.",
				Analysis:  &interview.AnswerAnalysis{Score: avg, OverallFeedback: "solid"},
				CreatedAt: endedAt.Add(-4 * time.Minute),
			},
		},
		Final: &interview.FinalAnalysis{
			AverageScore:       avg,
			TotalQuestions:     diff.QuestionsCount,
			CompletedQuestions: 1,
			StrongAreas:        []string{"clarity"},
			ImprovementAreas:   []string{"depth"},
			OverallFeedback:    "keep practicing",
			ScoreCategory:      catalog.CategorizeScore(avg, diff.ScoreThresholds),
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='sessions'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "sessions" {
		t.Errorf("table name = %q, want 'sessions'", name)
	}
}

func TestSaveAndGetSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	want := completedSession(t, "sess-1", now, 72)
	if err := repo.SaveSession(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("id = %q, want %q", got.ID, want.ID)
	}
	if got.Final == nil || got.Final.AverageScore != 72 {
		t.Errorf("final analysis not round-tripped: %+v", got.Final)
	}
	if len(got.Questions) != 1 || got.Questions[0].Text != want.Questions[0].Text {
		t.Errorf("transcript not round-tripped: %+v", got.Questions)
	}
	if got.Language != "en" {
		t.Errorf("language = %q, want 'en'", got.Language)
	}
}

func TestGetMissingSession(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Sessions().Get(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveRejectsPartialSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	sess := completedSession(t, "sess-partial", now, 50)
	sess.Final = nil

	if err := s.Sessions().SaveSession(ctx, sess); err == nil {
		t.Fatal("expected error saving session without final analysis")
	}

	if _, err := s.Sessions().Get(ctx, "sess-partial"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("partial session must not be persisted, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		sess := completedSession(t, string(rune('a'+i))+"-sess", base.Add(time.Duration(i)*time.Minute), 60+i*10)
		if err := repo.SaveSession(ctx, sess); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(got))
	}
	if got[0].ID != "c-sess" || got[2].ID != "a-sess" {
		t.Errorf("expected newest first, got order %q, %q, %q", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[0].AverageScore != 80 {
		t.Errorf("newest average = %d, want 80", got[0].AverageScore)
	}
}

func TestListLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		sess := completedSession(t, string(rune('a'+i))+"-sess", base.Add(time.Duration(i)*time.Minute), 70)
		if err := repo.SaveSession(ctx, sess); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}
	if got[0].ID != "e-sess" {
		t.Errorf("expected newest first, got %q", got[0].ID)
	}
}
