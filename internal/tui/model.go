// Package tui is the interactive play surface: one bubbletea program
// rendering the active gate, the assembly grid, the awaiting-approval
// screen, the host panel, and the final reveal. All game state lives
// in the session; this package only dispatches intents and renders
// copies.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"initiation/internal/game"
	"initiation/internal/gate"
)

// feedbackDelay is how long success feedback stays on screen before
// the cleared gate commits and the view changes. Input is disabled for
// the duration so nothing races the pending transition.
const feedbackDelay = 1500 * time.Millisecond

// commitMsg fires after the feedback delay.
type commitMsg struct{}

type Model struct {
	session *game.Session

	input textinput.Model // answer entry
	pin   textinput.Model // host panel PIN entry
	board gate.Board      // assembly arrangement, ephemeral

	feedback     *game.Feedback
	tileCursor   int
	showHost     bool
	showAnswers  bool
	confirmReset bool
	hostStatus   string
	width        int

	ctx context.Context
}

func New(ctx context.Context, session *game.Session) Model {
	input := textinput.New()
	input.Placeholder = "Enter the word"
	input.CharLimit = 64
	input.Focus()

	pin := textinput.New()
	pin.Placeholder = "Host PIN"
	pin.EchoMode = textinput.EchoPassword
	pin.CharLimit = 16

	return Model{
		session: session,
		input:   input,
		pin:     pin,
		ctx:     ctx,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case commitMsg:
		_ = m.session.CommitClear(m.ctx)
		m.feedback = nil
		m.input.Reset()
		m.board.Clear()
		m.tileCursor = 0
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Input stays dead while success feedback is on screen.
	if m.session.Pending() {
		return m, nil
	}

	if m.showHost {
		return m.updateHostKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlA:
		m.showHost = true
		m.hostStatus = ""
		m.pin.Reset()
		if m.session.State() == game.StateAwaiting {
			m.pin.Focus()
			m.input.Blur()
		}
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	}

	if g, ok := m.session.Gate(); ok && g.Kind == gate.KindAssembly {
		return m.updateAssemblyKey(msg)
	}
	if m.session.State() == game.StateComplete && msg.String() == "q" {
		return m, tea.Quit
	}

	return m.updateInputs(msg)
}

func (m Model) updateAssemblyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tiles := gate.Tiles()
	switch msg.String() {
	case "left", "h":
		if m.tileCursor > 0 {
			m.tileCursor--
		}
	case "right", "l":
		if m.tileCursor < len(tiles)-1 {
			m.tileCursor++
		}
	case " ":
		m.board.Place(tiles[m.tileCursor])
	case "c":
		m.board.Clear()
	}
	return m, nil
}

func (m Model) updateHostKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmReset {
		if msg.String() == "y" {
			_ = m.session.Reset(m.ctx)
			m.feedback = nil
			m.input.Reset()
			m.board.Clear()
			m.showHost = false
			m.showAnswers = false
			m.hostStatus = ""
		}
		m.confirmReset = false
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.showHost = false
		m.showAnswers = false
		m.pin.Blur()
		m.input.Focus()
		return m, nil
	case tea.KeyCtrlR:
		m.confirmReset = true
		return m, nil
	case tea.KeyCtrlY:
		m.showAnswers = !m.showAnswers
		return m, nil
	case tea.KeyEnter:
		return m.approve()
	}

	var cmd tea.Cmd
	m.pin, cmd = m.pin.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	g, ok := m.session.Gate()
	if !ok {
		return m, nil
	}

	var feedback game.Feedback
	var err error
	if g.Kind == gate.KindAssembly {
		feedback, err = m.session.SubmitAssembly(m.ctx, m.board.Slots())
	} else {
		feedback, err = m.session.SubmitAnswer(m.ctx, m.input.Value())
	}
	if err != nil {
		return m, nil
	}

	m.feedback = &feedback
	if feedback.Correct {
		return m, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
			return commitMsg{}
		})
	}
	return m, nil
}

func (m Model) approve() (tea.Model, tea.Cmd) {
	err := m.session.Approve(m.ctx, m.pin.Value())
	m.pin.Reset()
	switch {
	case errors.Is(err, game.ErrApprovalDenied):
		m.hostStatus = "Invalid PIN."
	case errors.Is(err, game.ErrNotAwaitingHost):
		m.hostStatus = "Nothing to approve."
	case err != nil:
		m.hostStatus = err.Error()
	default:
		m.hostStatus = ""
		m.showHost = false
		m.showAnswers = false
		m.pin.Blur()
		m.input.Reset()
		m.input.Focus()
	}
	return m, nil
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.showHost {
		m.pin, cmd = m.pin.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}
