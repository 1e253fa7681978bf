package pattern

import "pattern-ca/internal/core"

// Sim projects a pattern run onto a scrolling 2D display so the viewer can
// render the space-time diagram, newest generation on top. Once the
// classifier reaches a verdict the display freezes.
type Sim struct {
	cfg     Config
	grid    *core.ByteGrid
	history *History
	verdict Verdict
	done    bool
}

// New creates a viewer simulation with the given config. The simulation is
// unseeded until Reset is called.
func New(cfg Config) *Sim {
	return &Sim{cfg: cfg, grid: core.NewByteGrid(cfg.Width, cfg.Height)}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "pattern" }

// Size returns the display dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Cells exposes the display buffer.
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

// History exposes the generations produced so far.
func (s *Sim) History() *History { return s.history }

// Round reports the ordinal of the latest generation.
func (s *Sim) Round() int { return s.history.Latest().Ordinal }

// Verdict reports the classification once the run has terminated.
func (s *Sim) Verdict() (Verdict, bool) { return s.verdict, s.done }

// VerdictLabel reports the verdict as its literal label, for display use.
func (s *Sim) VerdictLabel() (string, bool) {
	if !s.done {
		return "", false
	}
	return s.verdict.String(), true
}

// Reset starts a fresh run. An explicit pattern from the config wins;
// otherwise a random row is drawn deterministically from seed.
func (s *Sim) Reset(seed int64) {
	s.history = NewHistory(s.seedRow(seed))
	s.verdict = 0
	s.done = false
	s.grid.Clear()
	s.blit(s.history.Latest())
}

func (s *Sim) seedRow(seed int64) []uint8 {
	if s.cfg.Pattern != "" {
		if row, err := core.ParseRow(s.cfg.Pattern); err == nil {
			return row
		}
	}
	n := s.grid.W - 6
	if n < 1 {
		n = 1
	}
	row := make([]uint8, n)
	core.FillSparse(core.NewRNG(seed).Source(), row, s.cfg.Density)
	return row
}

// Step advances one round and classifies. After a verdict the step is a
// no-op, keeping the final diagram on screen.
func (s *Sim) Step() {
	if s.done {
		return
	}
	s.history.Push(Advance(s.history.Latest()))
	if v, ok := Classify(s.history); ok {
		s.verdict = v
		s.done = true
	}
	s.grid.ScrollDown()
	s.blit(s.history.Latest())
}

// blit copies a generation into the top display row, truncated to the
// display width.
func (s *Sim) blit(g Generation) {
	top := s.grid.Row(0)
	for i := range top {
		top[i] = core.Empty
	}
	copy(top, g.Content)
}

func init() {
	core.Register("pattern", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
