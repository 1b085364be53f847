package inpaint

import "github.com/chewxy/math32"

// epsilon is the float32 machine epsilon. It keeps a zero directional
// factor from cancelling a contribution.
const epsilon float32 = 1.1920929e-07

// gradient estimates the distance field derivatives (∂D/∂x, ∂D/∂y) at (x, y).
func gradient(x, y int, dist *distanceField, flags *flagGrid) (gx, gy float32) {
	d := dist.at(x, y)
	gx = axisGradient(d, x-1, y, x+1, y, dist, flags)
	gy = axisGradient(d, x, y-1, x, y+1, dist, flags)
	return gx, gy
}

// axisGradient uses a central difference when both the previous and next
// pixels carry a distance, a one-sided difference when only one does and
// zero otherwise. Pixels outside the grid never carry a distance.
func axisGradient(d float32, px, py, nx, ny int, dist *distanceField, flags *flagGrid) float32 {
	prev, next := flags.available(px, py), flags.available(nx, ny)
	switch {
	case prev && next:
		return (dist.at(nx, ny) - dist.at(px, py)) / 2
	case prev:
		return d - dist.at(px, py)
	case next:
		return dist.at(nx, ny) - d
	}
	return 0
}

// reconstructor fills a pixel from the non-masked pixels around it.
// Sums are accumulated in float64: a constant neighbourhood reconstructs
// to exactly that constant once rounded back to float32.
type reconstructor struct {
	radius int
	acc    []float64
}

func newReconstructor(radius, channels int) *reconstructor {
	return &reconstructor{radius: radius, acc: make([]float64, channels)}
}

// fill replaces the channels of (x, y) in img with the weighted average of
// every pixel not flagged Inside within the reconstruction radius.
func (r *reconstructor) fill(img *Image, x, y int, dist *distanceField, flags *flagGrid) {
	for c := range r.acc {
		r.acc[c] = 0
	}
	d := dist.at(x, y)
	gx, gy := gradient(x, y, dist, flags)
	radius := float32(r.radius)

	// Window clipped to the image.
	y0, y1 := max(-r.radius, -y), min(r.radius, img.Height-1-y)
	x0, x1 := max(-r.radius, -x), min(r.radius, img.Width-1-x)

	var weightSum float64
	for oy := y0; oy <= y1; oy++ {
		cy := y + oy
		for ox := x0; ox <= x1; ox++ {
			cx := x + ox
			if flags.at(cx, cy) == Inside {
				continue
			}
			// Direction from the candidate towards the target pixel.
			dx, dy := float32(-ox), float32(-oy)
			lengthSq := float32(dx*dx) + float32(dy*dy)
			length := math32.Sqrt(lengthSq)
			if length > radius {
				continue
			}

			dir := math32.Abs(float32(dy*gy) + float32(dx*gx))
			if dir == 0 {
				dir = epsilon
			}
			level := 1 / (1 + math32.Abs(dist.at(cx, cy)-d))
			falloff := 1 / float32(length*lengthSq)
			weight := float64(math32.Abs(float32(float32(dir*falloff) * level)))

			src := img.At(cx, cy)
			for c := range r.acc {
				r.acc[c] += weight * float64(src[c])
			}
			weightSum += weight
		}
	}

	dst := img.At(x, y)
	for c, v := range r.acc {
		dst[c] = float32(v / weightSum)
	}
}
