package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"intervue/internal/catalog"
	"intervue/internal/question"
)

// State is the lifecycle position of the session owned by the Machine.
type State int

const (
	// StateSetup: no active session. Career and difficulty not committed.
	StateSetup State = iota

	// StateAwaitingQuestion: session created, generation about to run.
	StateAwaitingQuestion

	// StateAwaitingAnswer: a question was delivered, answer not submitted.
	StateAwaitingAnswer

	// StateAnalyzing: answer submitted, analysis in flight.
	StateAnalyzing

	// StateReadyToFinalize: last answer analyzed. The caller triggers
	// finalization explicitly so the last feedback can be reviewed first.
	StateReadyToFinalize

	// StateFinalizing: final report generation in flight.
	StateFinalizing

	// StateComplete: terminal. Session immutable, appended to history.
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateAwaitingQuestion:
		return "awaiting-question"
	case StateAwaitingAnswer:
		return "awaiting-answer"
	case StateAnalyzing:
		return "analyzing"
	case StateReadyToFinalize:
		return "ready-to-finalize"
	case StateFinalizing:
		return "finalizing"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

// ErrInvalidTransition is returned when an operation is requested in a
// state that does not permit it. The machine is left untouched.
type ErrInvalidTransition struct {
	State State
	Op    string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot %s in state %q", e.Op, e.State)
}

// ErrSessionInProgress is returned by Start when a session is active and
// incomplete. The caller must Reset explicitly to discard it.
type ErrSessionInProgress struct {
	SessionID string
}

func (e *ErrSessionInProgress) Error() string {
	return fmt.Sprintf("session %s is still in progress; reset to discard it", e.SessionID)
}

// Analyzer scores one answer. Implemented by analysis.Analyzer.
type Analyzer interface {
	AnalyzeAnswer(ctx context.Context, q, answer string, career catalog.Career, diff catalog.Difficulty, lang string) (*AnswerAnalysis, error)
}

// Aggregator produces the final report. Implemented by analysis.Aggregator.
type Aggregator interface {
	Aggregate(ctx context.Context, s *Session, lang string) (*FinalAnalysis, error)
}

// History receives completed sessions.
type History interface {
	SaveSession(ctx context.Context, s *Session) error
}

// Options configures a Machine.
type Options struct {
	Generator  question.Generator
	Analyzer   Analyzer
	Aggregator Aggregator

	// History is optional; when nil, completed sessions are not persisted.
	History History

	// Language is the session language tag ("en" or "es").
	Language string

	Logger *zap.Logger
}

// Machine owns the single active session and sequences generation,
// analysis, and aggregation. All mutation happens through its methods,
// strictly sequentially; a failed call leaves the machine in its
// pre-call state so the same trigger can retry.
type Machine struct {
	state   State
	session *Session

	generator  question.Generator
	analyzer   Analyzer
	aggregator Aggregator
	history    History
	language   string
	logger     *zap.Logger
}

// NewMachine creates a Machine in StateSetup.
func NewMachine(opts Options) *Machine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	lang := opts.Language
	if lang == "" {
		lang = "en"
	}
	return &Machine{
		state:      StateSetup,
		generator:  opts.Generator,
		analyzer:   opts.Analyzer,
		aggregator: opts.Aggregator,
		history:    opts.History,
		language:   lang,
		logger:     logger,
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Session returns the active session, or nil in StateSetup.
func (m *Machine) Session() *Session {
	return m.session
}

// Start creates a new session for the given career and difficulty and
// moves to StateAwaitingQuestion. At most one active session exists:
// starting over an incomplete session fails until Reset is called.
func (m *Machine) Start(career catalog.Career, difficulty catalog.Difficulty) error {
	if m.state != StateSetup && m.state != StateComplete {
		return &ErrSessionInProgress{SessionID: m.session.ID}
	}

	m.session = &Session{
		ID:         uuid.NewString(),
		Career:     career,
		Difficulty: difficulty,
		Language:   m.language,
		StartTime:  time.Now(),
	}
	m.state = StateAwaitingQuestion

	m.logger.Info("session started",
		zap.String("session_id", m.session.ID),
		zap.String("career", career.ID),
		zap.String("difficulty", difficulty.ID),
	)
	return nil
}

// NextQuestion generates the next question and moves to
// StateAwaitingAnswer. On failure the state stays at
// StateAwaitingQuestion and the generator's error surfaces unchanged.
func (m *Machine) NextQuestion(ctx context.Context) (*Question, error) {
	if m.state != StateAwaitingQuestion {
		return nil, &ErrInvalidTransition{State: m.state, Op: "generate a question"}
	}

	text, err := m.generator.Generate(ctx, question.Input{
		Career:            m.session.Career,
		Difficulty:        m.session.Difficulty,
		PreviousQuestions: m.session.QuestionTexts(),
		Language:          m.language,
	})
	if err != nil {
		return nil, err
	}

	m.session.Questions = append(m.session.Questions, Question{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now(),
	})
	m.session.CurrentQuestionIndex = len(m.session.Questions) - 1
	m.state = StateAwaitingAnswer

	return m.session.CurrentQuestion(), nil
}

// SubmitAnswer runs the answer through the gate and analysis, attaches
// the result to the current question, and advances: back to
// StateAwaitingQuestion while questions remain, or to
// StateReadyToFinalize after the last one. Any failure (including a
// too-short answer) returns to StateAwaitingAnswer with the question
// list unchanged.
func (m *Machine) SubmitAnswer(ctx context.Context, answer string) (*AnswerAnalysis, error) {
	if m.state != StateAwaitingAnswer {
		return nil, &ErrInvalidTransition{State: m.state, Op: "submit an answer"}
	}

	q := m.session.CurrentQuestion()
	m.state = StateAnalyzing

	result, err := m.analyzer.AnalyzeAnswer(ctx, q.Text, answer, m.session.Career, m.session.Difficulty, m.language)
	if err != nil {
		m.state = StateAwaitingAnswer
		return nil, err
	}

	q.Answer = answer
	q.Analysis = result

	if m.session.AnsweredCount() < m.session.Difficulty.QuestionsCount {
		m.state = StateAwaitingQuestion
	} else {
		m.state = StateReadyToFinalize
	}

	m.logger.Info("answer analyzed",
		zap.String("session_id", m.session.ID),
		zap.Int("score", result.Score),
		zap.Int("answered", m.session.AnsweredCount()),
		zap.Int("total", m.session.Difficulty.QuestionsCount),
	)
	return result, nil
}

// Finalize produces the final report, seals the session, appends it to
// history, and moves to StateComplete. On failure the state returns to
// StateReadyToFinalize; the same trigger retries.
func (m *Machine) Finalize(ctx context.Context) (*FinalAnalysis, error) {
	if m.state != StateReadyToFinalize {
		return nil, &ErrInvalidTransition{State: m.state, Op: "finalize the session"}
	}

	m.state = StateFinalizing

	final, err := m.aggregator.Aggregate(ctx, m.session, m.language)
	if err != nil {
		m.state = StateReadyToFinalize
		return nil, err
	}

	m.session.Final = final
	m.session.EndTime = time.Now()
	m.state = StateComplete

	if m.history != nil {
		if err := m.history.SaveSession(ctx, m.session); err != nil {
			// Persistence is best-effort; the completed session stays
			// valid in memory either way.
			m.logger.Warn("failed to save session history", zap.Error(err))
		}
	}

	m.logger.Info("session complete",
		zap.String("session_id", m.session.ID),
		zap.Int("average_score", final.AverageScore),
		zap.String("category", string(final.ScoreCategory)),
	)
	return final, nil
}

// Reset discards the active session without aggregation and returns to
// StateSetup. Discarded sessions are not appended to history.
func (m *Machine) Reset() {
	if m.session != nil && m.state != StateComplete {
		m.logger.Info("session discarded", zap.String("session_id", m.session.ID))
	}
	m.session = nil
	m.state = StateSetup
}
