package mcp

import (
	"context"
	"errors"
	"testing"

	"initiation/internal/game"
	"initiation/internal/gate"
	"initiation/internal/store"
)

type memStore struct {
	snapshot *store.Snapshot
}

func (m *memStore) Load(ctx context.Context) (*store.Snapshot, error) {
	if m.snapshot == nil {
		return nil, nil
	}
	return m.snapshot.Clone(), nil
}

func (m *memStore) Save(ctx context.Context, snapshot *store.Snapshot) error {
	m.snapshot = snapshot.Clone()
	return nil
}

func (m *memStore) Close(ctx context.Context) error { return nil }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	session := game.NewSession(context.Background(), &memStore{}, "7734", nil)
	return NewServer(session, "test")
}

func TestGetProgress(t *testing.T) {
	srv := newTestServer(t)
	_, out, err := srv.handleGetProgress(context.Background(), nil, GetProgressInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.CurrentGate != 1 || out.State != "active" {
		t.Fatalf("unexpected progress %+v", out)
	}
	if out.Title == "" {
		t.Fatalf("expected the active gate title")
	}
}

func TestSubmitAnswer(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	t.Run("empty text is rejected", func(t *testing.T) {
		if _, _, err := srv.handleSubmitAnswer(ctx, nil, SubmitAnswerInput{}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("wrong answer", func(t *testing.T) {
		_, out, err := srv.handleSubmitAnswer(ctx, nil, SubmitAnswerInput{Text: "NOPE"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Correct || out.State != "active" {
			t.Fatalf("unexpected output %+v", out)
		}
	})

	t.Run("correct answer commits immediately", func(t *testing.T) {
		_, out, err := srv.handleSubmitAnswer(ctx, nil, SubmitAnswerInput{Text: "LET"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !out.Correct || out.Message != "Necessary." || out.State != "awaiting_approval" {
			t.Fatalf("unexpected output %+v", out)
		}
	})

	t.Run("submission while awaiting errors", func(t *testing.T) {
		_, _, err := srv.handleSubmitAnswer(ctx, nil, SubmitAnswerInput{Text: "US"})
		if !errors.Is(err, game.ErrAwaitingHost) {
			t.Fatalf("expected ErrAwaitingHost, got %v", err)
		}
	})
}

func TestApproveGate(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	if _, _, err := srv.handleSubmitAnswer(ctx, nil, SubmitAnswerInput{Text: "LET"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	t.Run("empty pin is rejected", func(t *testing.T) {
		if _, _, err := srv.handleApproveGate(ctx, nil, ApproveGateInput{}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("wrong pin is denied", func(t *testing.T) {
		_, _, err := srv.handleApproveGate(ctx, nil, ApproveGateInput{PIN: "0000"})
		if !errors.Is(err, game.ErrApprovalDenied) {
			t.Fatalf("expected ErrApprovalDenied, got %v", err)
		}
	})

	t.Run("right pin advances", func(t *testing.T) {
		_, out, err := srv.handleApproveGate(ctx, nil, ApproveGateInput{PIN: "7734"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.CurrentGate != 2 || out.State != "active" {
			t.Fatalf("unexpected progress %+v", out)
		}
	})
}

func TestSubmitAssembly(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	t.Run("slot count is bounded", func(t *testing.T) {
		slots := make([]string, gate.BoardSlots+1)
		if _, _, err := srv.handleSubmitAssembly(ctx, nil, SubmitAssemblyInput{Slots: slots}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("wrong gate kind errors", func(t *testing.T) {
		_, _, err := srv.handleSubmitAssembly(ctx, nil, SubmitAssemblyInput{Slots: gate.Tiles()})
		if err == nil {
			t.Fatalf("expected error on a word gate")
		}
	})
}

func TestResetProgress(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	if _, _, err := srv.handleSubmitAnswer(ctx, nil, SubmitAnswerInput{Text: "LET"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, out, err := srv.handleResetProgress(ctx, nil, ResetProgressInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.CurrentGate != 1 || len(out.CompletedGates) != 0 || out.State != "active" {
		t.Fatalf("unexpected progress %+v", out)
	}
}

func TestRevealAnswers(t *testing.T) {
	srv := newTestServer(t)
	_, out, err := srv.handleRevealAnswers(context.Background(), nil, RevealAnswersInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Answers) != gate.Count {
		t.Fatalf("expected %d answers, got %d", gate.Count, len(out.Answers))
	}
	if out.Answers[0].Gate != 1 || out.Answers[0].Answer != "LET" {
		t.Fatalf("unexpected first answer %+v", out.Answers[0])
	}
}

func TestGetAttempts(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	t.Run("out of range gate errors", func(t *testing.T) {
		if _, _, err := srv.handleGetAttempts(ctx, nil, GetAttemptsInput{Gate: 0}); err == nil {
			t.Fatalf("expected error")
		}
		if _, _, err := srv.handleGetAttempts(ctx, nil, GetAttemptsInput{Gate: gate.Count + 1}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("logged attempts come back in order", func(t *testing.T) {
		for _, text := range []string{"first", "second"} {
			if _, _, err := srv.handleSubmitAnswer(ctx, nil, SubmitAnswerInput{Text: text}); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		}
		_, out, err := srv.handleGetAttempts(ctx, nil, GetAttemptsInput{Gate: 1})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out.Attempts) != 2 {
			t.Fatalf("expected 2 attempts, got %d", len(out.Attempts))
		}
		if out.Attempts[0].Attempt != "first" || out.Attempts[1].Attempt != "second" {
			t.Fatalf("unexpected attempts %+v", out.Attempts)
		}
		if out.Attempts[0].Timestamp == "" {
			t.Fatalf("expected a timestamp")
		}
	})
}
