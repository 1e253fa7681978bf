package pattern

import "strconv"

// Config controls the viewer-facing pattern simulation.
type Config struct {
	Width  int
	Height int

	// Pattern is an explicit seed row in '.'/'#' form. When empty the
	// simulation seeds a random row instead.
	Pattern string

	// Density is the fill probability per cell for random seed rows.
	Density float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   192,
		Height:  128,
		Density: 0.3,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}
