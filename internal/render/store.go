package render

import (
	"image/color"
	"sort"
	"time"

	"worldgrid/pkg/grid"
)

// Label is a text label kept by a LabelStore. It implements grid.Label.
type Label struct {
	spec  grid.LabelSpec
	text  string
	seq   int
	dirty bool
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.dirty = true
}

// Text returns the current label text.
func (l *Label) Text() string { return l.text }

// Spec returns the spec the label was created with.
func (l *Label) Spec() grid.LabelSpec { return l.spec }

// Position returns the label's world position, offset by its parent's.
func (l *Label) Position() grid.Vec2 {
	pos := l.spec.Position
	if parent, ok := l.spec.Parent.(*Label); ok && parent != nil {
		pos = pos.Add(parent.Position())
	}
	return pos
}

// TakeDirty reports whether the text changed since the last call.
func (l *Label) TakeDirty() bool {
	d := l.dirty
	l.dirty = false
	return d
}

// LabelStore keeps the labels a renderer has created.
type LabelStore struct {
	labels []*Label
	sorted bool
	seq    int
}

// Create adds a label for spec. Missing font size and color get defaults.
func (s *LabelStore) Create(spec grid.LabelSpec) *Label {
	if spec.FontSize <= 0 {
		spec.FontSize = 40
	}
	if spec.Color == nil {
		spec.Color = color.White
	}
	l := &Label{spec: spec, text: spec.Text, seq: s.seq, dirty: true}
	s.seq++
	s.labels = append(s.labels, l)
	s.sorted = false
	return l
}

// Len returns the number of labels.
func (s *LabelStore) Len() int { return len(s.labels) }

// Ordered returns the labels sorted by draw order, lowest first; ties keep
// creation order.
func (s *LabelStore) Ordered() []*Label {
	if !s.sorted {
		sort.SliceStable(s.labels, func(i, j int) bool {
			a, b := s.labels[i], s.labels[j]
			if a.spec.DrawOrder != b.spec.DrawOrder {
				return a.spec.DrawOrder < b.spec.DrawOrder
			}
			return a.seq < b.seq
		})
		s.sorted = true
	}
	return s.labels
}

// Line is a timed line segment in world space.
type Line struct {
	A, B    grid.Vec2
	Color   color.Color
	Expires time.Time

	// once lines are shown by the next Live call whatever the clock says.
	once bool
}

// LineStore keeps lines until their duration runs out.
type LineStore struct {
	lines []Line
	now   func() time.Time
}

// NewLineStore returns a store using now as its clock; nil means time.Now.
func NewLineStore(now func() time.Time) *LineStore {
	if now == nil {
		now = time.Now
	}
	return &LineStore{now: now}
}

// Add records a line visible for d. Non-positive durations last one frame.
func (s *LineStore) Add(a, b grid.Vec2, c color.Color, d time.Duration) {
	if c == nil {
		c = color.White
	}
	s.lines = append(s.lines, Line{A: a, B: b, Color: c, Expires: s.now().Add(d), once: d <= 0})
}

// Live drops expired lines and returns the rest. A line added with a
// non-positive duration is returned once.
func (s *LineStore) Live() []Line {
	now := s.now()
	kept := s.lines[:0]
	var live []Line
	for _, ln := range s.lines {
		if ln.once {
			live = append(live, ln)
			continue
		}
		if now.After(ln.Expires) {
			continue
		}
		live = append(live, ln)
		if ln.Expires.After(now) {
			kept = append(kept, ln)
		}
	}
	s.lines = kept
	return live
}

// Len returns the number of stored lines, expired or not.
func (s *LineStore) Len() int { return len(s.lines) }
