package core

import "fmt"

// Cell values used by row buffers.
const (
	Empty  uint8 = 0
	Filled uint8 = 1
)

// Symbols used by the textual row form.
const (
	EmptySymbol  byte = '.'
	FilledSymbol byte = '#'
)

// StripLeft returns a view of row with leading empty cells removed.
func StripLeft(row []uint8) []uint8 {
	i := 0
	for i < len(row) && row[i] == Empty {
		i++
	}
	return row[i:]
}

// StripRight returns a view of row with trailing empty cells removed.
func StripRight(row []uint8) []uint8 {
	n := len(row)
	for n > 0 && row[n-1] == Empty {
		n--
	}
	return row[:n]
}

// Strip returns a view of row with empty cells removed from both ends.
func Strip(row []uint8) []uint8 {
	return StripRight(StripLeft(row))
}

// FirstFilled returns the index of the first filled cell, or len(row) when
// the row has none.
func FirstFilled(row []uint8) int {
	for i, c := range row {
		if c != Empty {
			return i
		}
	}
	return len(row)
}

// LastFilled returns the index of the last filled cell. An all-empty row
// yields len(row), not len(row)-1; the padding math relies on this sentinel.
func LastFilled(row []uint8) int {
	for i := len(row) - 1; i >= 0; i-- {
		if row[i] != Empty {
			return i
		}
	}
	return len(row)
}

// CountFilled counts the filled cells among the first n cells of row.
func CountFilled(row []uint8, n int) int {
	if n > len(row) {
		n = len(row)
	}
	filled := 0
	for _, c := range row[:n] {
		if c != Empty {
			filled++
		}
	}
	return filled
}

// PadTrim normalizes a row so it carries at least 3 leading and exactly 3
// trailing empty cells. Three cells is the reach of the 5-cell rule window
// plus the one step the filled region can grow per round. Leading empties
// stay meaningful for position-sensitive comparisons and are kept; trailing
// empties in excess of 3 can never produce a filled cell and are dropped.
// The right fill is deliberately unclamped: a negative value trims instead
// of padding.
func PadTrim(row []uint8) []uint8 {
	first := FirstFilled(row)
	last := LastFilled(row)
	lfill := 3 - first
	if lfill < 0 {
		lfill = 0
	}
	if first == len(row) {
		// No filled cells: the sentinel makes the fill formula degenerate
		// into growing the row by lfill+4 empties.
		rfill := 3 - (len(row) - last - 1)
		return make([]uint8, lfill+len(row)+rfill)
	}
	out := make([]uint8, lfill+last+1+3)
	copy(out[lfill:], row[:last+1])
	return out
}

// ParseRow converts the textual '.'/'#' form into a row buffer.
func ParseRow(s string) ([]uint8, error) {
	row := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case EmptySymbol:
		case FilledSymbol:
			row[i] = Filled
		default:
			return nil, fmt.Errorf("unexpected character on a line: %q", s[i])
		}
	}
	return row, nil
}

// FormatRow renders a row buffer back into its textual '.'/'#' form.
func FormatRow(row []uint8) string {
	buf := make([]byte, len(row))
	for i, c := range row {
		if c == Empty {
			buf[i] = EmptySymbol
		} else {
			buf[i] = FilledSymbol
		}
	}
	return string(buf)
}
