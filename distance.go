package inpaint

// MaxDistance marks a pixel whose distance to the mask boundary is unresolved.
const MaxDistance float32 = 1.0e6

// distanceField stores the estimated distance of every pixel to the mask boundary.
type distanceField struct {
	width  int
	height int
	data   []float32
}

func newDistanceField(width, height int) *distanceField {
	d := &distanceField{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
	for i := range d.data {
		d.data[i] = MaxDistance
	}
	return d
}

func (d *distanceField) at(x, y int) float32 { return d.data[y*d.width+x] }

func (d *distanceField) set(x, y int, v float32) { d.data[y*d.width+x] = v }

// negate flips the sign of every distance in place.
func (d *distanceField) negate() {
	for i, v := range d.data {
		d.data[i] = -v
	}
}
