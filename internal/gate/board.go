package gate

// BoardSlots is the fixed size of the assembly grid.
const BoardSlots = 9

// Board holds the in-progress tile arrangement for the assembly gate.
// It is ephemeral: never persisted, cleared on submit, manual clear,
// or gate re-entry.
type Board struct {
	slots [BoardSlots]string
}

// Place puts a tile into the first empty slot. Returns false when the
// board is already full.
func (b *Board) Place(tile string) bool {
	for i, slot := range b.slots {
		if slot == "" {
			b.slots[i] = tile
			return true
		}
	}
	return false
}

// Clear empties every slot.
func (b *Board) Clear() {
	b.slots = [BoardSlots]string{}
}

// Slots returns a copy of the current arrangement. Empty slots are
// empty strings.
func (b *Board) Slots() []string {
	out := make([]string, BoardSlots)
	copy(out, b.slots[:])
	return out
}

// Full reports whether every slot holds a tile.
func (b *Board) Full() bool {
	for _, slot := range b.slots {
		if slot == "" {
			return false
		}
	}
	return true
}
