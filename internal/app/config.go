package app

import (
	"flag"
	"strconv"

	"karnaugh/pkg/kmap"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Vars  int
	Cover string
	Scale int
	TPS   int
	Seed  int64

	// Density and DontCare are the probabilities used by random fill.
	Density  float64
	DontCare float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := kmap.DefaultConfig()
	return &Config{
		Vars:     def.Vars,
		Cover:    def.Cover,
		Scale:    64,
		TPS:      30,
		Seed:     42,
		Density:  0.5,
		DontCare: 0.1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Vars, "vars", c.Vars, "number of input variables (2-6)")
	fs.StringVar(&c.Cover, "cover", c.Cover, "cover strategy: greedy, exact or weighted")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per map cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a random cell is 1")
	fs.Float64Var(&c.DontCare, "dc", c.DontCare, "probability a random cell is X")
}

// NewMinimizer builds the Minimizer described by the config. An invalid
// variable count or an unknown cover name is an error.
func (c *Config) NewMinimizer(opts ...kmap.Option) (*kmap.Minimizer, error) {
	mc, err := kmap.FromMap(c.Params())
	if err != nil {
		return nil, err
	}
	return kmap.NewWithConfig(mc, opts...)
}

// Params renders the minimizer settings as the key/value pairs kmap.FromMap
// understands.
func (c *Config) Params() map[string]string {
	return map[string]string{
		"vars":  strconv.Itoa(c.Vars),
		"cover": c.Cover,
	}
}
