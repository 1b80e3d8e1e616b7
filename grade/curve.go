package grade

import (
	"math"

	"recolor/preset"
)

// buildLUT expands tone-curve control points into a 256-entry lookup table
// by piecewise linear interpolation. Inputs outside the control range clamp
// to the first/last point. An empty curve yields the identity table.
func buildLUT(points []preset.CurvePoint) [256]uint8 {
	var lut [256]uint8
	if len(points) == 0 {
		for i := range lut {
			lut[i] = uint8(i)
		}
		return lut
	}

	for i := range lut {
		x := float64(i)
		y := points[len(points)-1].Y
		switch {
		case x <= points[0].X:
			y = points[0].Y
		default:
			for j := 1; j < len(points); j++ {
				if x <= points[j].X {
					p0, p1 := points[j-1], points[j]
					t := (x - p0.X) / (p1.X - p0.X)
					y = p0.Y + t*(p1.Y-p0.Y)
					break
				}
			}
		}
		lut[i] = uint8(math.Round(clamp(y, 0, 255)))
	}
	return lut
}

// composeLUT chains two tables so that out[i] = second[first[i]].
func composeLUT(first, second [256]uint8) [256]uint8 {
	var lut [256]uint8
	for i := range lut {
		lut[i] = second[first[i]]
	}
	return lut
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	} else if x > hi {
		return hi
	}
	return x
}

func clamp01(x float64) float64 {
	return clamp(x, 0, 1)
}
