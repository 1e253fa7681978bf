package core

// ByteGrid stores a 2D display of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Row returns the slice backing row y.
func (g *ByteGrid) Row(y int) []uint8 {
	return g.data[y*g.W : (y+1)*g.W]
}

// ScrollDown shifts every row one step towards the bottom, discarding the
// last row. Row 0 keeps its previous content until overwritten.
func (g *ByteGrid) ScrollDown() {
	copy(g.data[g.W:], g.data[:g.W*(g.H-1)])
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
