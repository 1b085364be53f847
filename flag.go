package inpaint

// Flag describes the state of a pixel during the fast marching propagation.
// A pixel only ever moves forward: Inside -> Band -> Known.
type Flag uint8

const (
	// Known pixels hold an original or a finalized value.
	Known Flag = iota
	// Band pixels are on the propagation front: enqueued but not yet finalized.
	Band
	// Inside pixels are still waiting to be reconstructed.
	Inside
)

func (f Flag) String() string {
	switch f {
	case Known:
		return "known"
	case Band:
		return "band"
	case Inside:
		return "inside"
	}
	return "unknown"
}

// frontGrid is the view of the pixel grid used by the Eikonal solver.
// The main loop and the exterior pass give it different meanings.
type frontGrid interface {
	inBounds(x, y int) bool
	// settled reports whether the pixel distance is final and may seed its neighbors.
	settled(x, y int) bool
	// pending reports whether the pixel has not been reached by the front yet.
	pending(x, y int) bool
}

// flagGrid holds one Flag per pixel in row-major order.
type flagGrid struct {
	width  int
	height int
	data   []Flag
}

func newFlagGrid(width, height int) *flagGrid {
	return &flagGrid{
		width:  width,
		height: height,
		data:   make([]Flag, width*height),
	}
}

func (g *flagGrid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *flagGrid) at(x, y int) Flag { return g.data[y*g.width+x] }

func (g *flagGrid) set(x, y int, f Flag) { g.data[y*g.width+x] = f }

func (g *flagGrid) settled(x, y int) bool { return g.at(x, y) == Known }

func (g *flagGrid) pending(x, y int) bool { return g.at(x, y) == Inside }

// available reports whether (x, y) lies in the grid and carries a usable distance.
func (g *flagGrid) available(x, y int) bool {
	return g.inBounds(x, y) && g.at(x, y) != Inside
}

// count returns the number of pixels flagged f.
func (g *flagGrid) count(f Flag) int {
	n := 0
	for _, v := range g.data {
		if v == f {
			n++
		}
	}
	return n
}

// neighbors lists the 4-connected offsets (dx, dy) in visiting order: up, left, down, right.
var neighbors = [4][2]int{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}
