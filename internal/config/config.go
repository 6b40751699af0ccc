// Package config holds the command-line and file configuration shared by the
// grid viewers.
package config

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the viewers.
type Config struct {
	Sim     string
	Scale   float64
	TPS     int
	Seed    int64
	Layout  string
	Verbose bool

	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "counter", Scale: 4, TPS: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "grid demo to run")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "screen units per world unit")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for demo reset")
	fs.StringVar(&c.Layout, "layout", c.Layout, "YAML grid layout file")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log cell changes of debug grids (-set debug=true)")
	fs.Var(&c.Overrides, "set", "layout override or sim parameter in key=value form (repeatable): w, h, cell, ox, oy, debug, rule")
}

// ResolveLayout loads the layout file, if any, and applies -set overrides.
func (c *Config) ResolveLayout() (Layout, error) {
	l := DefaultLayout()
	if c.Layout != "" {
		loaded, err := LoadLayout(c.Layout)
		if err != nil {
			return Layout{}, err
		}
		l = loaded
	}
	l = l.Apply(c.Overrides.Map())
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("invalid layout: %w", err)
	}
	return l, nil
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l KVList) Map() map[string]string {
	if len(l) == 0 {
		return nil
	}
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}
