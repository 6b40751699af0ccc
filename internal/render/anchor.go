package render

import "worldgrid/pkg/grid"

// AnchorOffset returns the offset from a label's anchor point to the top-left
// corner of a w*h text box, in screen units with y growing downward.
func AnchorOffset(a grid.Anchor, w, h float64) (dx, dy float64) {
	switch a {
	case grid.AnchorUpperCenter, grid.AnchorMiddleCenter, grid.AnchorLowerCenter:
		dx = -w / 2
	case grid.AnchorUpperRight, grid.AnchorMiddleRight, grid.AnchorLowerRight:
		dx = -w
	}
	switch a {
	case grid.AnchorMiddleLeft, grid.AnchorMiddleCenter, grid.AnchorMiddleRight:
		dy = -h / 2
	case grid.AnchorLowerLeft, grid.AnchorLowerCenter, grid.AnchorLowerRight:
		dy = -h
	}
	return dx, dy
}
