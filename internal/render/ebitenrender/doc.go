// Package ebitenrender draws grid debug labels, lines and cell shading with
// ebiten. Everything except this file requires the ebiten build tag.
package ebitenrender
