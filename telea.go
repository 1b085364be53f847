package inpaint

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
)

// Stats summarizes an inpainting run.
type Stats struct {
	// Inside is the number of masked pixels.
	Inside int
	// Band is the size of the initial narrow band ring around the mask.
	Band int
	// Exterior is the number of pixels outside the mask reached by the exterior pass.
	Exterior int
	// Filled is the number of reconstructed pixels.
	Filled int
	// Popped is the number of narrow band entries processed by the main loop.
	Popped int
	// Stale counts popped entries whose pixel was already final.
	Stale int
	// MaxDistance is the largest distance popped from the narrow band.
	MaxDistance float32
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("inside", s.Inside),
		slog.Int("band", s.Band),
		slog.Int("exterior", s.Exterior),
		slog.Int("filled", s.Filled),
		slog.Int("popped", s.Popped),
		slog.Int("stale", s.Stale),
		slog.Float64("max_distance", float64(s.MaxDistance)),
	)
}

// Inpaint reconstructs the masked pixels of img in place using Telea's fast
// marching method. Pixels outside the mask are left bit-for-bit unchanged.
// radius is the size of the neighborhood, in pixels, a reconstructed value
// is drawn from.
//
// On error img is not modified.
func Inpaint[T Sample](img *Image, mask *Mask[T], radius int) error {
	_, err := InpaintStats(img, mask, radius)
	return err
}

// InpaintStats is like Inpaint and also reports statistics about the run.
func InpaintStats[T Sample](img *Image, mask *Mask[T], radius int) (Stats, error) {
	if err := img.validate(); err != nil {
		return Stats{}, err
	}
	if err := mask.validate(); err != nil {
		return Stats{}, err
	}
	if radius < 1 {
		return Stats{}, fmt.Errorf("%w: got %d", ErrRadius, radius)
	}
	if img.Width != mask.Width || img.Height != mask.Height {
		return Stats{}, fmt.Errorf("%w: image is %dx%d, mask is %dx%d",
			ErrDimensionMismatch, img.Width, img.Height, mask.Width, mask.Height)
	}

	m := newMarcher(img, mask.Normalize(), radius)
	m.precomputeExterior()
	if err := m.run(); err != nil {
		return m.stats, err
	}
	m.commit(img)

	Logger().Debug("inpaint: done", "stats", m.stats)
	return m.stats, nil
}

// marcher holds the working state of a single inpainting run.
type marcher struct {
	radius int
	work   *Image
	masked []bool
	flags  *flagGrid
	dist   *distanceField
	band   *narrowBand
	filler *reconstructor
	stats  Stats

	// Optional observers, used by tests.
	onPush func(bandItem)
	onPop  func(bandItem)
}

// newMarcher classifies the pixels from the normalized mask and builds the
// initial narrow band: every known pixel 4-connected to a masked one.
func newMarcher(img *Image, mask []float32, radius int) *marcher {
	w, h := img.Width, img.Height
	m := &marcher{
		radius: radius,
		work:   img.Clone(),
		masked: make([]bool, w*h),
		flags:  newFlagGrid(w, h),
		dist:   newDistanceField(w, h),
		band:   newNarrowBand(w + h),
		filler: newReconstructor(radius, img.Channels),
	}
	for i, v := range mask {
		if math32.Ceil(v) >= 1 {
			m.masked[i] = true
			m.flags.data[i] = Inside
			m.stats.Inside++
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !m.masked[y*w+x] {
				continue
			}
			for _, off := range neighbors {
				nx, ny := x+off[0], y+off[1]
				if !m.flags.inBounds(nx, ny) || m.flags.at(nx, ny) != Known {
					continue
				}
				m.flags.set(nx, ny, Band)
				m.dist.set(nx, ny, 0)
				m.enqueue(0, nx, ny)
				m.stats.Band++
			}
		}
	}
	Logger().Debug("inpaint: narrow band initialized",
		"width", w, "height", h, "inside", m.stats.Inside, "band", m.stats.Band)

	return m
}

func (m *marcher) enqueue(d float32, x, y int) {
	m.band.push(d, x, y)
	if m.onPush != nil {
		m.onPush(bandItem{priority: d, x: x, y: y})
	}
}

func (m *marcher) precomputeExterior() {
	m.stats.Exterior = computeExteriorDistances(m.flags, m.dist, m.band, m.radius)
	Logger().Debug("inpaint: exterior distances computed",
		"reached", m.stats.Exterior, "limit", 2*m.radius)
}

// run propagates the front inward until the narrow band is empty.
func (m *marcher) run() error {
	for {
		it, ok := m.band.pop()
		if !ok {
			break
		}
		if m.flags.at(it.x, it.y) == Known {
			m.stats.Stale++
			Logger().Warn("inpaint: stale narrow band entry", "x", it.x, "y", it.y, "distance", it.priority)
			continue
		}
		m.stats.Popped++
		if it.priority > m.stats.MaxDistance {
			m.stats.MaxDistance = it.priority
		}
		if m.onPop != nil {
			m.onPop(it)
		}
		m.flags.set(it.x, it.y, Known)

		for _, off := range neighbors {
			nx, ny := it.x+off[0], it.y+off[1]
			d, ok := arrivalTime(nx, ny, m.dist, m.flags)
			if !ok {
				continue
			}
			m.dist.set(nx, ny, d)
			m.filler.fill(m.work, nx, ny, m.dist, m.flags)
			m.flags.set(nx, ny, Band)
			m.enqueue(d, nx, ny)
			m.stats.Filled++
		}
	}

	if m.stats.Filled != m.stats.Inside {
		return fmt.Errorf("%w: %d of %d pixels left", ErrBandExhausted,
			m.stats.Inside-m.stats.Filled, m.stats.Inside)
	}
	return nil
}

// commit copies the reconstructed pixels back to dst.
func (m *marcher) commit(dst *Image) {
	c := dst.Channels
	for i, masked := range m.masked {
		if masked {
			copy(dst.Pix[i*c:(i+1)*c], m.work.Pix[i*c:(i+1)*c])
		}
	}
}
