package pattern

import "pattern-ca/internal/core"

// Generation is one row of the automaton at a given round. It is immutable
// once built: Content holds the padded row, Stripped the same row with
// leading and trailing empties removed, and Ordinal the 0-based round index.
type Generation struct {
	Content  []uint8
	Stripped []uint8
	Ordinal  int
}

// newGeneration normalizes raw row content into a Generation.
func newGeneration(raw []uint8, ordinal int) Generation {
	content := core.PadTrim(raw)
	return Generation{
		Content:  content,
		Stripped: core.Strip(content),
		Ordinal:  ordinal,
	}
}

// History is the append-only sequence of generations for one run, ordered
// from earliest to latest. Generations are never mutated or removed.
type History struct {
	gens []Generation
}

// NewHistory seeds a history with the round-0 generation built from a
// validated input row.
func NewHistory(seed []uint8) *History {
	return &History{gens: []Generation{newGeneration(seed, 0)}}
}

// Push appends the next generation.
func (h *History) Push(g Generation) {
	h.gens = append(h.gens, g)
}

// Len reports how many generations have been produced, seed included.
func (h *History) Len() int { return len(h.gens) }

// Latest returns the most recent generation.
func (h *History) Latest() Generation { return h.gens[len(h.gens)-1] }

// At returns the generation produced at round i.
func (h *History) At(i int) Generation { return h.gens[i] }
