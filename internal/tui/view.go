package tui

import (
	"fmt"
	"strings"

	"initiation/internal/game"
	"initiation/internal/gate"
	"initiation/internal/store"
)

func (m Model) View() string {
	if m.showHost {
		return m.hostView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Initiation"))
	b.WriteString("\n\n")

	if m.feedback != nil {
		if m.feedback.Kind == game.FeedbackSuccess {
			b.WriteString(successStyle.Render(m.feedback.Message))
		} else {
			b.WriteString(errorStyle.Render(m.feedback.Message))
		}
		b.WriteString("\n\n")
	}

	switch m.session.State() {
	case game.StateComplete:
		b.WriteString(revealStyle.Render(gate.FinalReveal))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("q quit · ctrl+a host panel"))
	case game.StateAwaiting:
		b.WriteString(waitingStyle.Render("Return to Saggu."))
		b.WriteString("\n\n")
		b.WriteString(infoStyle.Render("The gate is solved. Await approval."))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("ctrl+a host approval · ctrl+c quit"))
	default:
		m.gateView(&b)
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) gateView(b *strings.Builder) {
	g, ok := m.session.Gate()
	if !ok {
		return
	}

	b.WriteString(gateTitleStyle.Render(g.Title))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(g.Prompt))
	b.WriteString("\n\n")

	if g.Kind == gate.KindAssembly {
		m.assemblyView(b)
		return
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("enter submit · ctrl+a host panel · ctrl+c quit"))
}

func (m Model) assemblyView(b *strings.Builder) {
	slots := m.board.Slots()
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			idx := row*3 + col
			label := slots[idx]
			if label == "" {
				label = fmt.Sprintf("%d", idx+1)
			}
			cells = append(cells, cellStyle.Render(label))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\nAvailable tiles:\n")
	tiles := gate.Tiles()
	rendered := make([]string, 0, len(tiles))
	for i, tile := range tiles {
		if i == m.tileCursor {
			rendered = append(rendered, tileCursorStyle.Render(tile))
		} else {
			rendered = append(rendered, tileStyle.Render(tile))
		}
	}
	b.WriteString(strings.Join(rendered, " "))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("←/→ pick tile · space place · c clear · enter submit · ctrl+a host panel"))
}

func (m Model) hostView() string {
	snapshot := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Host Panel"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Current gate: %d\n", snapshot.CurrentGate))
	b.WriteString(fmt.Sprintf("Completed: %s\n", completedList(snapshot)))

	if m.hostStatus != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.hostStatus))
		b.WriteString("\n")
	}

	if m.confirmReset {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Reset all progress? y to confirm, any other key cancels."))
		b.WriteString("\n")
	}

	if snapshot.AwaitingHost {
		b.WriteString("\n")
		b.WriteString(m.pin.View())
		b.WriteString("\n")
	}

	if m.showAnswers {
		b.WriteString("\nAnswer key:\n")
		key := m.session.AnswerKey()
		for id := 1; id <= gate.Count; id++ {
			b.WriteString(fmt.Sprintf("  Gate %d: %s\n", id, key[id]))
		}
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter approve · ctrl+r reset · ctrl+y answer key · esc close"))
	b.WriteString("\n")
	return b.String()
}

func completedList(snapshot store.Snapshot) string {
	if len(snapshot.CompletedGates) == 0 {
		return "None"
	}
	parts := make([]string, 0, len(snapshot.CompletedGates))
	for _, id := range snapshot.CompletedGates {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ", ")
}
