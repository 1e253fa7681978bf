//go:build ebiten

package ui

import (
	"fmt"

	"pattern-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// statusProvider is implemented by simulations that expose a round counter
// and a terminal verdict for display.
type statusProvider interface {
	Round() int
	VerdictLabel() (string, bool)
}

// Overlay draws a status readout on top of the simulation view.
type Overlay struct {
	sim  core.Sim
	show bool
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, show: true}
}

// Update toggles the readout.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.show = !o.show
	}
}

// Draw renders the readout onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(statusProvider)
	if !ok {
		return
	}
	line := fmt.Sprintf("round %d", provider.Round())
	if label, done := provider.VerdictLabel(); done {
		line = fmt.Sprintf("round %d  verdict: %s", provider.Round(), label)
	}
	ebitenutil.DebugPrintAt(screen, line, 4, 4)
}
