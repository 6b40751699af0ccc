package grid

import (
	"image/color"
	"time"
)

// Anchor positions label text relative to its point.
type Anchor int

const (
	AnchorUpperLeft Anchor = iota
	AnchorUpperCenter
	AnchorUpperRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorLowerLeft
	AnchorLowerCenter
	AnchorLowerRight
)

// Alignment controls how multi-line label text is justified.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// LabelSpec describes a text label to place in the world.
type LabelSpec struct {
	Text      string
	Parent    Label
	Position  Vec2
	FontSize  int
	Color     color.Color
	Anchor    Anchor
	Alignment Alignment
	DrawOrder int
}

// Label is a handle to text created by a Renderer.
type Label interface {
	SetText(text string)
	Text() string
}

// Renderer is the drawing facility used for debug output. Positions are in
// world space; implementations own the mapping onto their screen.
type Renderer interface {
	CreateLabel(spec LabelSpec) Label
	DrawLine(a, b Vec2, c color.Color, d time.Duration)
}

// Debug label and line defaults.
const (
	DebugFontSize     = 20
	DebugDrawOrder    = 5000
	DebugLineDuration = 100 * time.Second
)

// DebugColor is used for debug labels and lines.
var DebugColor color.Color = color.White
