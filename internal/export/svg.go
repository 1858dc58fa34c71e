// Package export renders mass-radius curves to SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/tovstar/internal/star"
)

// CurveToSVG draws a mass-radius curve as a polyline, radius (km) on the
// x-axis and mass (solar masses) on the y-axis, with the maximum-mass
// point marked.
func CurveToSVG(seq *star.Sequence, lengthKM float64, width, height int) string {
	if seq == nil || seq.Len() < 2 {
		return ""
	}

	minX, maxX := seq.Radii[0]*lengthKM, seq.Radii[0]*lengthKM
	minY, maxY := seq.Masses[0], seq.Masses[0]
	for i := 0; i < seq.Len(); i++ {
		x := seq.Radii[i] * lengthKM
		y := seq.Masses[i]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	toPixel := func(i int) (float64, float64) {
		x := (seq.Radii[i]*lengthKM - minX) / rangeX * float64(width)
		y := float64(height) - (seq.Masses[i]-minY)/rangeY*float64(height)
		return x, y
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="#00ff00" stroke-width="1.5" d="M`,
		width, height, width, height))

	for i := 0; i < seq.Len(); i++ {
		x, y := toPixel(i)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	px, py := toPixel(seq.MaxIndex)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="#ff5555"/>
<text x="%.1f" y="%.1f" fill="#cccccc" font-size="11" font-family="monospace">Mmax=%.3f</text>
</svg>`, px, py, px+6, py-6, seq.Masses[seq.MaxIndex]))

	return sb.String()
}
