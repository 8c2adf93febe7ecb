// Package answer holds the pure validators for gate submissions. They
// never touch progress state or the attempt log.
package answer

import (
	"strings"

	"initiation/internal/gate"
)

// Normalize maps raw input to canonical form: surrounding whitespace
// trimmed, upper-cased. All word comparisons happen in this form.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// CheckWord reports whether input matches the gate's canonical answer.
// Exact equality after normalization; no fuzzy matching.
func CheckWord(g gate.Gate, input string) bool {
	if g.Kind != gate.KindWord {
		return false
	}
	return Normalize(input) == g.Answer
}

// CheckAssembly reports whether an arrangement satisfies the assembly
// gate: every required fragment must appear as a substring of at least
// one occupied slot. Position and order are ignored, and a single slot
// may satisfy several fragments at once.
func CheckAssembly(slots []string) bool {
	for _, fragment := range gate.RequiredFragments() {
		if !fragmentPlaced(fragment, slots) {
			return false
		}
	}
	return true
}

func fragmentPlaced(fragment string, slots []string) bool {
	for _, slot := range slots {
		if slot == "" {
			continue
		}
		if strings.Contains(slot, fragment) {
			return true
		}
	}
	return false
}
