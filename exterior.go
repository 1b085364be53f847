package inpaint

// exteriorRole is the state of a pixel while the exterior pass marches
// away from the mask. It is kept apart from Flag so the primary grid is
// never reinterpreted.
type exteriorRole uint8

const (
	// outsideUnexplored pixels lie outside the mask and were not reached yet.
	outsideUnexplored exteriorRole = iota
	// outsideFront pixels are enqueued on the outward front.
	outsideFront
	// outsideSettled pixels have a final distance. Masked pixels start here.
	outsideSettled
)

// exteriorGrid is the frontGrid seen by the exterior pass.
type exteriorGrid struct {
	width  int
	height int
	roles  []exteriorRole
}

// newExteriorGrid derives the exterior roles from the primary flags:
// known pixels become unexplored, band pixels form the front and the
// masked pixels count as settled.
func newExteriorGrid(flags *flagGrid) *exteriorGrid {
	g := &exteriorGrid{
		width:  flags.width,
		height: flags.height,
		roles:  make([]exteriorRole, len(flags.data)),
	}
	for i, f := range flags.data {
		switch f {
		case Known:
			g.roles[i] = outsideUnexplored
		case Band:
			g.roles[i] = outsideFront
		case Inside:
			g.roles[i] = outsideSettled
		}
	}
	return g
}

func (g *exteriorGrid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *exteriorGrid) set(x, y int, r exteriorRole) { g.roles[y*g.width+x] = r }

func (g *exteriorGrid) settled(x, y int) bool {
	return g.roles[y*g.width+x] == outsideSettled
}

func (g *exteriorGrid) pending(x, y int) bool {
	return g.roles[y*g.width+x] == outsideUnexplored
}

// computeExteriorDistances extends the distance field outside the mask up to
// twice the radius, then negates the whole field so pixels outside the mask
// carry negative distances. The reconstruction gradient relies on that sign.
// Only dist is modified; flags and band are left as they are.
// It returns the number of pixels reached outside the mask.
func computeExteriorDistances(flags *flagGrid, dist *distanceField, band *narrowBand, radius int) int {
	grid := newExteriorGrid(flags)
	front := band.clone()
	limit := float32(radius) * 2

	var (
		last    float32
		reached int
	)
	for front.len() > 0 && last < limit {
		it, _ := front.pop()
		grid.set(it.x, it.y, outsideSettled)

		for _, off := range neighbors {
			nx, ny := it.x+off[0], it.y+off[1]
			d, ok := arrivalTime(nx, ny, dist, grid)
			if !ok {
				continue
			}
			last = d
			dist.set(nx, ny, d)
			grid.set(nx, ny, outsideFront)
			front.push(d, nx, ny)
			reached++
		}
	}
	dist.negate()

	return reached
}
