package pattern

import "bytes"

// MaxRounds caps how many generations a run may produce. A run that reaches
// the cap without repeating or emptying is classified VerdictOther.
const MaxRounds = 100

// Verdict classifies the evolution of a pattern.
type Verdict int

const (
	// VerdictVanishing means the latest generation has no filled squares.
	VerdictVanishing Verdict = iota
	// VerdictBlinking means an earlier generation repeats exactly, filled
	// squares in the same positions.
	VerdictBlinking
	// VerdictGliding means an earlier generation repeats in shape but at a
	// different position.
	VerdictGliding
	// VerdictOther means no repetition was detected within MaxRounds.
	VerdictOther
)

// String returns the literal verdict label.
func (v Verdict) String() string {
	switch v {
	case VerdictVanishing:
		return "vanishing"
	case VerdictBlinking:
		return "blinking"
	case VerdictGliding:
		return "gliding"
	default:
		return "other"
	}
}

// Classify inspects the latest generation against all earlier ones and
// reports the first verdict it can justify. The second return value is false
// when no verdict applies yet and the caller must advance another round.
// Classification never mutates the history.
func Classify(h *History) (Verdict, bool) {
	latest := h.Latest()

	// Vanishing needs no comparison: the latest row has no filled squares.
	if len(latest.Stripped) == 0 {
		return VerdictVanishing, true
	}

	// Scan earlier generations newest to oldest. Content equality implies
	// stripped equality, so checking blinking before gliding per entry
	// matches checking blinking across all entries before gliding.
	for i := h.Len() - 2; i >= 0; i-- {
		earlier := h.At(i)
		if bytes.Equal(latest.Content, earlier.Content) {
			return VerdictBlinking, true
		}
		if bytes.Equal(latest.Stripped, earlier.Stripped) {
			return VerdictGliding, true
		}
	}

	if h.Len() >= MaxRounds {
		return VerdictOther, true
	}
	return 0, false
}
