package mcp

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"initiation/internal/game"
	"initiation/internal/gate"
	"initiation/internal/store"
)

type SubmitAnswerInput struct {
	Text string `json:"text" jsonschema:"answer for the active gate"`
}

type SubmitAssemblyInput struct {
	Slots []string `json:"slots" jsonschema:"tile arrangement, up to nine slots, empty strings for empty slots"`
}

type ApproveGateInput struct {
	PIN string `json:"pin" jsonschema:"host PIN"`
}

type GetProgressInput struct{}

type ResetProgressInput struct{}

type RevealAnswersInput struct{}

type GetAttemptsInput struct {
	Gate int `json:"gate" jsonschema:"gate number, 1-9"`
}

type SubmitOutput struct {
	Correct bool   `json:"correct"`
	Message string `json:"message"`
	State   string `json:"state"`
}

type ProgressOutput struct {
	CurrentGate    int    `json:"current_gate"`
	Title          string `json:"title,omitempty"`
	State          string `json:"state"`
	CompletedGates []int  `json:"completed_gates"`
	AwaitingHost   bool   `json:"awaiting_host"`
	GameComplete   bool   `json:"game_complete"`
}

type AnswerOutput struct {
	Gate   int    `json:"gate"`
	Answer string `json:"answer"`
}

type RevealAnswersOutput struct {
	Answers []AnswerOutput `json:"answers"`
}

type AttemptOutput struct {
	Attempt   string `json:"attempt"`
	Correct   bool   `json:"correct"`
	Timestamp string `json:"timestamp"`
}

type GetAttemptsOutput struct {
	Attempts []AttemptOutput `json:"attempts"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_progress",
		Description: "Return the current progression state",
	}, s.handleGetProgress)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "submit_answer",
		Description: "Submit a word answer for the active gate",
	}, s.handleSubmitAnswer)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "submit_assembly",
		Description: "Submit a tile arrangement for the assembly gate",
	}, s.handleSubmitAssembly)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "approve_gate",
		Description: "Approve the solved gate with the host PIN",
	}, s.handleApproveGate)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "reset_progress",
		Description: "Reset all progression state",
	}, s.handleResetProgress)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "reveal_answers",
		Description: "Return the answer key (host diagnostic)",
	}, s.handleRevealAnswers)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_attempts",
		Description: "Return the attempt log for a gate",
	}, s.handleGetAttempts)
}

func (s *Server) handleGetProgress(ctx context.Context, req *sdk.CallToolRequest, input GetProgressInput) (*sdk.CallToolResult, ProgressOutput, error) {
	return nil, s.progressOutput(), nil
}

func (s *Server) handleSubmitAnswer(ctx context.Context, req *sdk.CallToolRequest, input SubmitAnswerInput) (*sdk.CallToolResult, SubmitOutput, error) {
	if input.Text == "" {
		return nil, SubmitOutput{}, fmt.Errorf("text is required")
	}
	feedback, err := s.session.SubmitAnswer(ctx, input.Text)
	if err != nil {
		return nil, SubmitOutput{}, err
	}
	out, err := s.commitOutput(ctx, feedback)
	return nil, out, err
}

func (s *Server) handleSubmitAssembly(ctx context.Context, req *sdk.CallToolRequest, input SubmitAssemblyInput) (*sdk.CallToolResult, SubmitOutput, error) {
	if len(input.Slots) > gate.BoardSlots {
		return nil, SubmitOutput{}, fmt.Errorf("at most %d slots", gate.BoardSlots)
	}
	feedback, err := s.session.SubmitAssembly(ctx, input.Slots)
	if err != nil {
		return nil, SubmitOutput{}, err
	}
	out, err := s.commitOutput(ctx, feedback)
	return nil, out, err
}

func (s *Server) handleApproveGate(ctx context.Context, req *sdk.CallToolRequest, input ApproveGateInput) (*sdk.CallToolResult, ProgressOutput, error) {
	if input.PIN == "" {
		return nil, ProgressOutput{}, fmt.Errorf("pin is required")
	}
	if err := s.session.Approve(ctx, input.PIN); err != nil {
		return nil, ProgressOutput{}, err
	}
	return nil, s.progressOutput(), nil
}

func (s *Server) handleResetProgress(ctx context.Context, req *sdk.CallToolRequest, input ResetProgressInput) (*sdk.CallToolResult, ProgressOutput, error) {
	if err := s.session.Reset(ctx); err != nil {
		return nil, ProgressOutput{}, err
	}
	return nil, s.progressOutput(), nil
}

func (s *Server) handleRevealAnswers(ctx context.Context, req *sdk.CallToolRequest, input RevealAnswersInput) (*sdk.CallToolResult, RevealAnswersOutput, error) {
	key := s.session.AnswerKey()
	out := RevealAnswersOutput{Answers: make([]AnswerOutput, 0, len(key))}
	for id := 1; id <= gate.Count; id++ {
		out.Answers = append(out.Answers, AnswerOutput{Gate: id, Answer: key[id]})
	}
	return nil, out, nil
}

func (s *Server) handleGetAttempts(ctx context.Context, req *sdk.CallToolRequest, input GetAttemptsInput) (*sdk.CallToolResult, GetAttemptsOutput, error) {
	if _, ok := gate.ByID(input.Gate); !ok {
		return nil, GetAttemptsOutput{}, fmt.Errorf("gate must be between 1 and %d", gate.Count)
	}
	attempts := s.session.History(input.Gate)
	out := GetAttemptsOutput{Attempts: make([]AttemptOutput, 0, len(attempts))}
	for _, attempt := range attempts {
		out.Attempts = append(out.Attempts, attemptOutput(attempt))
	}
	return nil, out, nil
}

// commitOutput finishes a submission on this surface: no interactive
// feedback delay, so a staged clear commits immediately.
func (s *Server) commitOutput(ctx context.Context, feedback game.Feedback) (SubmitOutput, error) {
	if err := s.session.CommitClear(ctx); err != nil {
		return SubmitOutput{}, err
	}
	return SubmitOutput{
		Correct: feedback.Correct,
		Message: feedback.Message,
		State:   string(s.session.State()),
	}, nil
}

func (s *Server) progressOutput() ProgressOutput {
	snapshot := s.session.Snapshot()
	out := ProgressOutput{
		CurrentGate:    snapshot.CurrentGate,
		State:          string(s.session.State()),
		CompletedGates: snapshot.CompletedGates,
		AwaitingHost:   snapshot.AwaitingHost,
		GameComplete:   snapshot.GameComplete,
	}
	if g, ok := s.session.Gate(); ok {
		out.Title = g.Title
	}
	return out
}

func attemptOutput(attempt store.Attempt) AttemptOutput {
	return AttemptOutput{
		Attempt:   attempt.Attempt,
		Correct:   attempt.Correct,
		Timestamp: attempt.Timestamp.Format(time.RFC3339),
	}
}
