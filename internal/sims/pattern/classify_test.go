package pattern

import (
	"testing"

	"pattern-ca/internal/core"
)

func TestClassifySeedAloneHasNoVerdict(t *testing.T) {
	h := NewHistory(mustRow(t, "##"))
	if v, ok := Classify(h); ok {
		t.Fatalf("seed-only history classified as %s", v)
	}
}

func TestClassifyVanishing(t *testing.T) {
	h := NewHistory(mustRow(t, "#"))
	h.Push(Advance(h.Latest()))
	v, ok := Classify(h)
	if !ok || v != VerdictVanishing {
		t.Fatalf("got (%s, %v), expected vanishing", v, ok)
	}
	if v.String() != "vanishing" {
		t.Fatalf("label = %q", v.String())
	}
}

func TestClassifyBlinking(t *testing.T) {
	h := NewHistory(mustRow(t, "#.##"))
	h.Push(newGeneration(mustRow(t, ".##.#"), 1))
	h.Push(newGeneration(mustRow(t, "#.##"), 2))
	v, ok := Classify(h)
	if !ok || v != VerdictBlinking {
		t.Fatalf("got (%s, %v), expected blinking", v, ok)
	}
}

func TestClassifyGliding(t *testing.T) {
	h := NewHistory(mustRow(t, "##"))
	h.Push(newGeneration(mustRow(t, "#..#"), 1))
	// Same shape as the seed, shifted two cells right.
	h.Push(newGeneration(mustRow(t, ".....##"), 2))
	v, ok := Classify(h)
	if !ok || v != VerdictGliding {
		t.Fatalf("got (%s, %v), expected gliding", v, ok)
	}
}

func TestClassifyScansNewestFirst(t *testing.T) {
	// The scan walks earlier generations newest to oldest and takes the
	// first rule that matches per entry. A shape match against a newer
	// generation therefore wins over an exact match against an older one.
	h := NewHistory(mustRow(t, "##"))
	h.Push(newGeneration(mustRow(t, ".....##"), 1))
	h.Push(newGeneration(mustRow(t, "##"), 2))
	v, ok := Classify(h)
	if !ok || v != VerdictGliding {
		t.Fatalf("got (%s, %v), expected gliding from the newer shape match", v, ok)
	}
}

func TestClassifyOtherExactlyAtCap(t *testing.T) {
	// Rows of strictly growing run length never repeat in shape or
	// position and never empty.
	runRow := func(n int) []uint8 {
		row := make([]uint8, n)
		for i := range row {
			row[i] = core.Filled
		}
		return row
	}
	h := NewHistory(runRow(1))
	for i := 1; i < MaxRounds-1; i++ {
		h.Push(newGeneration(runRow(i+1), i))
		if v, ok := Classify(h); ok {
			t.Fatalf("verdict %s at %d generations, before the cap", v, h.Len())
		}
	}
	h.Push(newGeneration(runRow(MaxRounds), MaxRounds-1))
	v, ok := Classify(h)
	if !ok || v != VerdictOther {
		t.Fatalf("got (%s, %v) at the cap, expected other", v, ok)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	h := NewHistory(mustRow(t, "##"))
	h.Push(Advance(h.Latest()))
	h.Push(Advance(h.Latest()))

	lenBefore := h.Len()
	v1, ok1 := Classify(h)
	v2, ok2 := Classify(h)
	if v1 != v2 || ok1 != ok2 {
		t.Fatalf("classification not stable: (%s,%v) vs (%s,%v)", v1, ok1, v2, ok2)
	}
	if h.Len() != lenBefore {
		t.Fatal("Classify mutated the history")
	}
}
