package pattern

// Run simulates a validated seed row until the classifier reaches a verdict.
// The returned history holds every generation produced, seed included; at
// MaxRounds generations the verdict defaults to VerdictOther, so Run always
// terminates.
func Run(seed []uint8) (Verdict, *History) {
	h := NewHistory(seed)
	for h.Len() < MaxRounds {
		h.Push(Advance(h.Latest()))
		if v, ok := Classify(h); ok {
			return v, h
		}
	}
	// Not reached: Classify reports VerdictOther once the history hits
	// MaxRounds generations.
	return VerdictOther, h
}
