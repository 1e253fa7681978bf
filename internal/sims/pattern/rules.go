package pattern

import "pattern-ca/internal/core"

// Advance computes the generation below prev.
//
// Each square is decided by the square above it and the four squares next to
// that, two on each side. Below an empty square the new square fills when the
// 5-square window holds 2 or 3 filled squares; below a filled square it fills
// when the window holds 3 or 5, the window count including the filled square
// itself. Squares more than one step outside the filled region stay empty,
// so only that range is scanned.
func Advance(prev Generation) Generation {
	row := prev.Content
	next := make([]uint8, len(row))
	start := core.FirstFilled(row) - 1
	stop := core.LastFilled(row) + 1
	for i := start; i <= stop; i++ {
		if i < 0 || i >= len(row) {
			continue
		}
		filled := windowFilled(row, i)
		if row[i] == core.Empty {
			if filled == 2 || filled == 3 {
				next[i] = core.Filled
			}
			continue
		}
		if filled == 3 || filled == 5 {
			next[i] = core.Filled
		}
	}
	return newGeneration(next, prev.Ordinal+1)
}

// windowFilled counts the filled cells in the 5-cell window centered on i,
// treating out-of-bounds indexes as empty.
func windowFilled(row []uint8, i int) int {
	lo := i - 2
	if lo < 0 {
		lo = 0
	}
	hi := i + 3
	if hi > len(row) {
		hi = len(row)
	}
	return core.CountFilled(row[lo:hi], hi-lo)
}
