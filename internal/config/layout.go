package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"worldgrid/pkg/grid"
)

// Layout describes the placement of a grid in world space.
//
// Layout files are YAML, e.g.
//
//	width: 12
//	height: 8
//	cellSize: 10
//	origin: {x: -60, y: -40}
//	debug: true
type Layout struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cellSize"`
	Origin   Point   `yaml:"origin"`
	Debug    bool    `yaml:"debug"`
}

// Point is a YAML-friendly world position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts the point to a grid.Vec2.
func (p Point) Vec() grid.Vec2 { return grid.Vec2{X: p.X, Y: p.Y} }

// DefaultLayout returns the layout used when no file or overrides are given.
func DefaultLayout() Layout {
	return Layout{Width: 16, Height: 12, CellSize: 10}
}

// WorldSize returns the extent of the grid in world units.
func (l Layout) WorldSize() grid.Vec2 {
	return grid.Vec2{X: float64(l.Width) * l.CellSize, Y: float64(l.Height) * l.CellSize}
}

// LoadLayout reads a YAML layout file. Fields missing from the file keep
// their DefaultLayout values.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout: %w", err)
	}
	return ParseLayout(data)
}

// ParseLayout decodes YAML layout data over DefaultLayout and validates it.
func ParseLayout(data []byte) (Layout, error) {
	l := DefaultLayout()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("invalid layout: %w", err)
	}
	return l, nil
}

// Validate checks the layout can be used to build a grid.
func (l Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("dimensions %dx%d must be positive: %w", l.Width, l.Height, grid.ErrInvalidArgument)
	}
	if !(l.CellSize > 0) || math.IsInf(l.CellSize, 0) {
		return fmt.Errorf("cellSize %v must be positive: %w", l.CellSize, grid.ErrInvalidArgument)
	}
	for _, v := range []float64{l.Origin.X, l.Origin.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("origin (%v, %v) must be finite: %w", l.Origin.X, l.Origin.Y, grid.ErrInvalidArgument)
		}
	}
	return nil
}

// Apply overrides layout fields from flag-style key/value pairs. Unknown keys
// and unparsable values are ignored.
func (l Layout) Apply(kv map[string]string) Layout {
	if kv == nil {
		return l
	}
	if v, ok := kv["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			l.Width = parsed
		}
	}
	if v, ok := kv["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			l.Height = parsed
		}
	}
	if v, ok := kv["cell"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			l.CellSize = parsed
		}
	}
	if v, ok := kv["ox"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			l.Origin.X = parsed
		}
	}
	if v, ok := kv["oy"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			l.Origin.Y = parsed
		}
	}
	if v, ok := kv["debug"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			l.Debug = parsed
		}
	}
	return l
}
