package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim     string
	Pattern string
	Scale   int
	TPS     int
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "pattern", Scale: 4, TPS: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed row in '.'/'#' form (empty for a random row)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "rounds per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random rows")
}
