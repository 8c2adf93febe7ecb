// Package game owns the progression state machine. All mutation of the
// progress snapshot goes through named operations on Session; the
// presentation layers only ever read copies.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"initiation/internal/answer"
	"initiation/internal/gate"
	"initiation/internal/store"
)

var (
	// ErrAwaitingHost rejects submissions while a solved gate awaits
	// the host's approval.
	ErrAwaitingHost = errors.New("gate is solved; awaiting host approval")
	// ErrNotAwaitingHost rejects approval when no gate is waiting.
	ErrNotAwaitingHost = errors.New("no gate is awaiting approval")
	// ErrApprovalDenied reports a PIN mismatch. Never logged as an
	// attempt.
	ErrApprovalDenied = errors.New("invalid PIN")
	// ErrGameComplete rejects everything but reset once all gates are
	// cleared.
	ErrGameComplete = errors.New("all gates are complete")
)

// State is the derived machine state.
type State string

const (
	StateActive   State = "active"
	StateAwaiting State = "awaiting_approval"
	StateComplete State = "complete"
)

// FeedbackKind classifies submission feedback.
type FeedbackKind string

const (
	FeedbackSuccess FeedbackKind = "success"
	FeedbackError   FeedbackKind = "error"
)

// Feedback is the outcome of the most recent submission.
type Feedback struct {
	Kind    FeedbackKind
	Message string
	Correct bool
}

// Session holds the single progress snapshot for the process lifetime.
type Session struct {
	pin    string
	db     store.Store
	logger *zap.Logger
	now    func() time.Time

	snapshot *store.Snapshot
	// pendingClear stages a solved gate between the submission verdict
	// and the committed transition, so the presentation layer can show
	// success feedback before the view changes.
	pendingClear int
}

// NewSession loads the persisted snapshot (falling back to a fresh one
// when missing or corrupt) and returns the session. A load failure is
// a diagnostic, never fatal.
func NewSession(ctx context.Context, db store.Store, pin string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		pin:      pin,
		db:       db,
		logger:   logger,
		now:      time.Now,
		snapshot: store.NewSnapshot(),
	}

	loaded, err := db.Load(ctx)
	switch {
	case errors.Is(err, store.ErrCorrupt):
		logger.Warn("persisted progress is corrupt; starting fresh", zap.Error(err))
	case err != nil:
		logger.Warn("loading progress failed; starting fresh", zap.Error(err))
	case loaded != nil:
		loaded.Normalize()
		s.snapshot = loaded
	}

	return s
}

// SubmitAnswer validates free-text input against the active word gate.
// The attempt is logged either way; a correct verdict stages the
// transition for CommitClear.
func (s *Session) SubmitAnswer(ctx context.Context, input string) (Feedback, error) {
	g, err := s.activeGate()
	if err != nil {
		return Feedback{}, err
	}
	if g.Kind != gate.KindWord {
		return Feedback{}, fmt.Errorf("%s takes a tile arrangement, not text", g.Title)
	}

	correct := answer.CheckWord(g, input)
	s.recordAttempt(ctx, g.ID, input, correct)
	return s.verdict(g, correct), nil
}

// SubmitAssembly validates a tile arrangement against the assembly
// gate. Logged attempts use the CORRECT/WRONG markers rather than the
// full arrangement.
func (s *Session) SubmitAssembly(ctx context.Context, slots []string) (Feedback, error) {
	g, err := s.activeGate()
	if err != nil {
		return Feedback{}, err
	}
	if g.Kind != gate.KindAssembly {
		return Feedback{}, fmt.Errorf("%s takes a word, not a tile arrangement", g.Title)
	}

	correct := answer.CheckAssembly(slots)
	marker := "WRONG"
	if correct {
		marker = "CORRECT"
	}
	s.recordAttempt(ctx, g.ID, marker, correct)
	return s.verdict(g, correct), nil
}

// CommitClear applies a staged correct submission: the gate joins
// completedGates and the machine moves to awaiting approval. The
// presentation layer calls this after its feedback delay; callers
// without a delay call it immediately after Submit. No-op when nothing
// is staged.
func (s *Session) CommitClear(ctx context.Context) error {
	if s.pendingClear == 0 {
		return nil
	}
	id := s.pendingClear
	s.pendingClear = 0

	s.snapshot.CompletedGates = append(s.snapshot.CompletedGates, id)
	s.snapshot.AwaitingHost = true
	s.save(ctx)
	return nil
}

// Approve advances past an awaiting gate when the PIN matches. A
// mismatch returns ErrApprovalDenied and changes nothing; credential
// failures are never written to the attempt log.
func (s *Session) Approve(ctx context.Context, pin string) error {
	if !s.snapshot.AwaitingHost {
		return ErrNotAwaitingHost
	}
	if pin != s.pin {
		return ErrApprovalDenied
	}

	s.snapshot.AwaitingHost = false
	s.snapshot.CurrentGate++
	if s.snapshot.CurrentGate > gate.Count {
		s.snapshot.GameComplete = true
	}
	s.save(ctx)
	return nil
}

// Reset returns to the fresh snapshot from any state, including
// complete. The confirmation step belongs to the presentation layer.
func (s *Session) Reset(ctx context.Context) error {
	s.snapshot = store.NewSnapshot()
	s.pendingClear = 0
	s.save(ctx)
	return nil
}

// State derives the machine state from the snapshot.
func (s *Session) State() State {
	switch {
	case s.snapshot.GameComplete:
		return StateComplete
	case s.snapshot.AwaitingHost:
		return StateAwaiting
	default:
		return StateActive
	}
}

// Snapshot returns a copy for read-only display.
func (s *Session) Snapshot() store.Snapshot {
	return *s.snapshot.Clone()
}

// Gate returns the gate currently being attempted, false once the game
// is complete.
func (s *Session) Gate() (gate.Gate, bool) {
	if s.snapshot.GameComplete {
		return gate.Gate{}, false
	}
	return gate.ByID(s.snapshot.CurrentGate)
}

// Pending reports whether a correct submission is staged and input
// should stay disabled until CommitClear runs.
func (s *Session) Pending() bool {
	return s.pendingClear != 0
}

// History returns the logged attempts for a gate, oldest first.
func (s *Session) History(gateID int) []store.Attempt {
	attempts := s.snapshot.Attempts[store.GateKey(gateID)]
	out := make([]store.Attempt, len(attempts))
	copy(out, attempts)
	return out
}

// AnswerKey exposes every canonical answer. Host diagnostic only.
func (s *Session) AnswerKey() map[int]string {
	return gate.AnswerKey()
}

func (s *Session) activeGate() (gate.Gate, error) {
	if s.snapshot.GameComplete {
		return gate.Gate{}, ErrGameComplete
	}
	if s.snapshot.AwaitingHost || s.pendingClear != 0 {
		return gate.Gate{}, ErrAwaitingHost
	}
	g, ok := gate.ByID(s.snapshot.CurrentGate)
	if !ok {
		return gate.Gate{}, ErrGameComplete
	}
	return g, nil
}

func (s *Session) verdict(g gate.Gate, correct bool) Feedback {
	if correct {
		s.pendingClear = g.ID
		return Feedback{Kind: FeedbackSuccess, Message: g.Success, Correct: true}
	}
	return Feedback{Kind: FeedbackError, Message: g.Failure, Correct: false}
}

func (s *Session) recordAttempt(ctx context.Context, gateID int, raw string, correct bool) {
	key := store.GateKey(gateID)
	s.snapshot.Attempts[key] = append(s.snapshot.Attempts[key], store.Attempt{
		Attempt:   raw,
		Correct:   correct,
		Timestamp: s.now().UTC(),
	})
	s.save(ctx)
}

func (s *Session) save(ctx context.Context) {
	if err := s.db.Save(ctx, s.snapshot); err != nil {
		s.logger.Warn("saving progress failed; continuing in memory", zap.Error(err))
	}
}
