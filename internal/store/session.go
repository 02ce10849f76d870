package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"intervue/internal/interview"
)

// ErrNotFound is returned when a session lookup matches nothing.
var ErrNotFound = errors.New("session not found")

// SessionSummary is one row of history, without the full transcript.
type SessionSummary struct {
	ID                 string
	CareerID           string
	DifficultyID       string
	Language           string
	StartedAt          time.Time
	EndedAt            time.Time
	AverageScore       int
	ScoreCategory      string
	CompletedQuestions int
	TotalQuestions     int
}

// SessionRepo persists completed interview sessions.
type SessionRepo interface {
	// SaveSession stores a completed session. The session must carry a
	// final analysis; partial sessions are never persisted.
	SaveSession(ctx context.Context, s *interview.Session) error

	// List returns session summaries, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]SessionSummary, error)

	// Get returns the full session by ID, including the transcript.
	Get(ctx context.Context, id string) (*interview.Session, error)
}

type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) SaveSession(ctx context.Context, s *interview.Session) error {
	if s.Final == nil {
		return errors.New("refusing to save session without final analysis")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sessions (
			id, career_id, difficulty_id, language,
			started_at, ended_at,
			average_score, score_category, completed_questions, total_questions,
			data
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Career.ID, s.Difficulty.ID, s.Language,
		s.StartTime.UTC(), s.EndTime.UTC(),
		s.Final.AverageScore, string(s.Final.ScoreCategory),
		s.Final.CompletedQuestions, s.Final.TotalQuestions,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *sessionRepo) List(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := `
		SELECT id, career_id, difficulty_id, language,
		       started_at, ended_at,
		       average_score, score_category, completed_questions, total_questions
		FROM sessions
		ORDER BY ended_at DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var s SessionSummary
		err := rows.Scan(
			&s.ID, &s.CareerID, &s.DifficultyID, &s.Language,
			&s.StartedAt, &s.EndedAt,
			&s.AverageScore, &s.ScoreCategory, &s.CompletedQuestions, &s.TotalQuestions,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*interview.Session, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM sessions WHERE id = ?", id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}

	var s interview.Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}
