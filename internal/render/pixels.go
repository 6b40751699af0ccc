package render

import "image/color"

// FillShades writes one RGBA pixel per cell of a w*h grid into buf. Grid row
// 0 is the bottom row, so it lands on the last image row.
func FillShades(buf []byte, w, h int, shade func(x, y int) color.RGBA) {
	if len(buf) < 4*w*h {
		return
	}
	for row := 0; row < h; row++ {
		y := h - 1 - row
		for x := 0; x < w; x++ {
			base := (row*w + x) * 4
			col := shade(x, y)
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// Ramp maps t in [0, 1] onto a color between cold and hot. Values outside
// the range are clamped.
func Ramp(t float64, cold, hot color.RGBA) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(cold.R, hot.R, t),
		G: lerpComponent(cold.G, hot.G, t),
		B: lerpComponent(cold.B, hot.B, t),
		A: lerpComponent(cold.A, hot.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
