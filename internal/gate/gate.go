package gate

// Kind distinguishes how a gate is answered.
type Kind string

const (
	// KindWord gates accept a single free-text word.
	KindWord Kind = "word"
	// KindAssembly gates accept an arrangement of tiles.
	KindAssembly Kind = "assembly"
)

// Gate is one ordered step in the sequence. Gates are defined once at
// startup and never change at runtime.
type Gate struct {
	ID      int
	Title   string
	Kind    Kind
	Answer  string // canonical answer, already normalized; empty for assembly
	Success string // feedback shown on a correct submission
	Failure string // feedback shown on an incorrect submission
	Prompt  string
}

// Count is the number of gates in the sequence.
const Count = 9

// AssemblyID identifies the one gate answered by tile arrangement.
const AssemblyID = 5

// FinalReveal is shown once every gate has been cleared and approved.
const FinalReveal = "Let us judge kebab\nwhere fire learned patience."

var gates = []Gate{
	{ID: 1, Title: "GATE I", Kind: KindWord, Answer: "LET", Success: "Necessary.", Failure: "Not sufficient.", Prompt: prompt1},
	{ID: 2, Title: "GATE II", Kind: KindWord, Answer: "US", Success: "Together.", Failure: "Separated.", Prompt: prompt2},
	{ID: 3, Title: "GATE III", Kind: KindWord, Answer: "JUDGE", Success: "Within.", Failure: "External.", Prompt: prompt3},
	{ID: 4, Title: "GATE IV", Kind: KindWord, Answer: "KEBAB", Success: "Universal.", Failure: "Mutable.", Prompt: prompt4},
	{ID: 5, Title: "GATE V", Kind: KindAssembly, Answer: "JIGSAW", Success: "Structure precedes location.", Failure: "Fragmented.", Prompt: prompt5},
	{ID: 6, Title: "GATE VI", Kind: KindWord, Answer: "WHERE", Success: "Located.", Failure: "Displaced.", Prompt: prompt6},
	{ID: 7, Title: "GATE VII", Kind: KindWord, Answer: "FIRE", Success: "Illuminated.", Failure: "Obscured.", Prompt: prompt7},
	{ID: 8, Title: "GATE VIII", Kind: KindWord, Answer: "LEARNED", Success: "Acquired.", Failure: "Innate.", Prompt: prompt8},
	{ID: 9, Title: "GATE IX", Kind: KindWord, Answer: "PATIENCE", Success: "Complete.", Failure: "Too hasty.", Prompt: prompt9},
}

// All returns the gate sequence in order.
func All() []Gate {
	out := make([]Gate, len(gates))
	copy(out, gates)
	return out
}

// ByID looks up a gate by its ordinal.
func ByID(id int) (Gate, bool) {
	if id < 1 || id > Count {
		return Gate{}, false
	}
	return gates[id-1], true
}

// AnswerKey maps every gate to its canonical answer. Host diagnostic.
func AnswerKey() map[int]string {
	key := make(map[int]string, len(gates))
	for _, g := range gates {
		key[g.ID] = g.Answer
	}
	return key
}

// Tiles returns the tile labels offered by the assembly gate. Two of
// the nine are decorative arrows carried over from the printed puzzle.
func Tiles() []string {
	return []string{"FIRE", "REPE", "TITI", "ON", "CULT", "URE", "→ RESU", "LT", "↓"}
}

// RequiredFragments returns the fragment set the assembly gate checks
// for. Every fragment must appear somewhere in the placed tiles.
func RequiredFragments() []string {
	return []string{"FIRE", "REPE", "TITI", "ON", "CULT", "URE", "RESU", "LT"}
}
