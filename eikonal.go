package inpaint

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// solveEikonal solves |∇T| = 1 at a grid point using the first order upwind
// scheme, with (x1, y1) and (x2, y2) as the vertical and horizontal sources.
// It returns MaxDistance when the sources carry no information.
func solveEikonal(x1, y1, x2, y2 int, dist *distanceField, grid frontGrid) float32 {
	if !grid.inBounds(x1, y1) || !grid.inBounds(x2, y2) {
		return MaxDistance
	}
	d1, d2 := dist.at(x1, y1), dist.at(x2, y2)
	known1, known2 := grid.settled(x1, y1), grid.settled(x2, y2)

	if known1 && known2 {
		// The float32 conversion forbids fused multiply-add.
		diff := d1 - d2
		if rr := 2 - float32(diff*diff); rr > 0 {
			r := math32.Sqrt(rr)
			s := (d1 + d2 - r) / 2
			if s >= d1 && s >= d2 {
				return s
			}
			s += r
			if s >= d1 && s >= d2 {
				return s
			}
			return MaxDistance
		}
	}
	if known1 {
		return 1 + d1
	}
	if known2 {
		return 1 + d2
	}
	return MaxDistance
}

// arrivalTime returns the smallest Eikonal solution over the four
// vertical/horizontal source pairs around (x, y). The boolean is false when
// the pixel lies outside the grid or has already been reached.
func arrivalTime(x, y int, dist *distanceField, grid frontGrid) (float32, bool) {
	if !grid.inBounds(x, y) || !grid.pending(x, y) {
		return 0, false
	}
	return minOf(
		solveEikonal(x, y-1, x-1, y, dist, grid),
		solveEikonal(x, y+1, x+1, y, dist, grid),
		solveEikonal(x, y-1, x+1, y, dist, grid),
		solveEikonal(x, y+1, x-1, y, dist, grid),
	), true
}

// minOf returns the smallest of the provided values.
func minOf[T constraints.Ordered](values ...T) T {
	acc := values[0]
	for _, v := range values {
		if v < acc {
			acc = v
		}
	}
	return acc
}
