package pattern

import (
	"slices"
	"testing"

	"pattern-ca/internal/core"
)

func TestSimRegistered(t *testing.T) {
	factory, ok := core.Sims()["pattern"]
	if !ok {
		t.Fatal("pattern sim not registered")
	}
	sim := factory(map[string]string{"w": "32", "h": "16"})
	if sim.Name() != "pattern" {
		t.Fatalf("factory produced sim %q", sim.Name())
	}
	if size := sim.Size(); size.W != 32 || size.H != 16 {
		t.Fatalf("factory ignored dimensions, got %+v", size)
	}
	if !slices.Contains(core.Names(), "pattern") {
		t.Fatal("registry names do not include pattern")
	}
}

func TestSimFixedPatternRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 8
	cfg.Pattern = "#.##"

	s := New(cfg)
	s.Reset(0)

	if s.Round() != 0 {
		t.Fatalf("round after reset = %d", s.Round())
	}
	if _, done := s.Verdict(); done {
		t.Fatal("verdict reported before any step")
	}
	top := core.FormatRow(s.Cells()[:cfg.Width])
	if top != "...#.##........." {
		t.Fatalf("top row after reset = %q", top)
	}

	s.Step()
	if _, done := s.Verdict(); done {
		t.Fatal("verdict reported after one round")
	}
	// The seed row scrolled down one step.
	second := core.FormatRow(s.Cells()[cfg.Width : 2*cfg.Width])
	if second != "...#.##........." {
		t.Fatalf("second row after one step = %q", second)
	}

	s.Step()
	v, done := s.Verdict()
	if !done || v != VerdictBlinking {
		t.Fatalf("got (%s, %v) after two rounds, expected blinking", v, done)
	}
	if label, ok := s.VerdictLabel(); !ok || label != "blinking" {
		t.Fatalf("verdict label = (%q, %v)", label, ok)
	}
	if s.Round() != 2 {
		t.Fatalf("round = %d, expected 2", s.Round())
	}

	// Further steps freeze the display and the history.
	before := append([]uint8(nil), s.Cells()...)
	s.Step()
	if s.Round() != 2 || s.History().Len() != 3 {
		t.Fatal("step after verdict advanced the run")
	}
	if !slices.Equal(before, s.Cells()) {
		t.Fatal("step after verdict changed the display")
	}
}

func TestSimRandomSeedDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 16

	a := New(cfg)
	b := New(cfg)
	a.Reset(7)
	b.Reset(7)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different displays")
	}

	a.Reset(8)
	if slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("different seeds produced identical displays")
	}
}

func TestSimVerdictLabelHiddenWhileRunning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 8
	cfg.Pattern = "###.#....##"

	s := New(cfg)
	s.Reset(0)
	if label, ok := s.VerdictLabel(); ok || label != "" {
		t.Fatalf("label before termination = (%q, %v)", label, ok)
	}
}
