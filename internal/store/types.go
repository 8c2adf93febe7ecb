package store

import (
	"fmt"
	"time"

	"initiation/internal/gate"
)

// Attempt is one logged submission for a gate. Entries are append-only
// and never rewritten.
type Attempt struct {
	Attempt   string    `json:"attempt"`
	Correct   bool      `json:"correct"`
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot is the complete durable progression state. It round-trips
// losslessly through every driver as a single JSON record.
type Snapshot struct {
	CurrentGate    int                  `json:"currentGate"`
	CompletedGates []int                `json:"completedGates"`
	AwaitingHost   bool                 `json:"awaitingHost"`
	GameComplete   bool                 `json:"gameComplete"`
	Attempts       map[string][]Attempt `json:"attempts"`
}

// GateKey returns the attempts map key for a gate.
func GateKey(id int) string {
	return fmt.Sprintf("gate_%d", id)
}

// NewSnapshot returns the fresh initial state: gate 1 active, nothing
// completed, an empty attempt slice for every gate so readers never
// branch on key presence.
func NewSnapshot() *Snapshot {
	attempts := make(map[string][]Attempt, gate.Count)
	for id := 1; id <= gate.Count; id++ {
		attempts[GateKey(id)] = []Attempt{}
	}
	return &Snapshot{
		CurrentGate:    1,
		CompletedGates: []int{},
		Attempts:       attempts,
	}
}

// Normalize fills in attempt keys a loaded snapshot may be missing.
// Older records only created keys on first write.
func (s *Snapshot) Normalize() {
	if s.Attempts == nil {
		s.Attempts = make(map[string][]Attempt, gate.Count)
	}
	for id := 1; id <= gate.Count; id++ {
		key := GateKey(id)
		if s.Attempts[key] == nil {
			s.Attempts[key] = []Attempt{}
		}
	}
	if s.CompletedGates == nil {
		s.CompletedGates = []int{}
	}
	if s.CurrentGate < 1 {
		s.CurrentGate = 1
	}
}

// Clone returns a deep copy safe to hand to the presentation layer.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		CurrentGate:    s.CurrentGate,
		CompletedGates: make([]int, len(s.CompletedGates)),
		AwaitingHost:   s.AwaitingHost,
		GameComplete:   s.GameComplete,
		Attempts:       make(map[string][]Attempt, len(s.Attempts)),
	}
	copy(out.CompletedGates, s.CompletedGates)
	for key, attempts := range s.Attempts {
		copied := make([]Attempt, len(attempts))
		copy(copied, attempts)
		out.Attempts[key] = copied
	}
	return out
}
