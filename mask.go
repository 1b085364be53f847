package inpaint

import (
	"fmt"
	"image"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Sample is the set of element types a Mask can hold.
type Sample interface {
	constraints.Integer | constraints.Float
}

// Mask marks the pixels to reconstruct. Any sample above zero is masked,
// after normalizing it by the largest value its type can represent.
type Mask[T Sample] struct {
	Width  int
	Height int
	Pix    []T
}

// NewMask creates an empty mask, where no pixel is masked.
func NewMask[T Sample](width, height int) *Mask[T] {
	return &Mask[T]{
		Width:  width,
		Height: height,
		Pix:    make([]T, width*height),
	}
}

// NewMaskFromSlice wraps pix without copying it.
func NewMaskFromSlice[T Sample](width, height int, pix []T) (*Mask[T], error) {
	m := &Mask[T]{Width: width, Height: height, Pix: pix}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mask[T]) validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil mask", ErrShape)
	}
	if m.Width < 0 || m.Height < 0 || len(m.Pix) != m.Width*m.Height {
		return fmt.Errorf("%w: mask %dx%d holds %d samples", ErrShape, m.Width, m.Height, len(m.Pix))
	}
	return nil
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// At returns the sample at (x, y), or zero outside the mask bounds.
func (m *Mask[T]) At(x, y int) T {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Pix[y*m.Width+x]
}

// Set writes the sample at (x, y).
func (m *Mask[T]) Set(x, y int, v T) {
	m.Pix[y*m.Width+x] = v
}

// Normalize maps every sample into [0, 1] by dividing it by the type maximum.
// Values outside the range, like negative signed samples, are clamped.
func (m *Mask[T]) Normalize() []float32 {
	top := sampleMax[T]()
	out := make([]float32, len(m.Pix))
	for i, v := range m.Pix {
		n := float64(v) / top
		switch {
		case n < 0 || n != n:
			n = 0
		case n > 1:
			n = 1
		}
		out[i] = float32(n)
	}
	return out
}

// sampleMax returns the largest value representable by T, or 1 for floats.
func sampleMax[T Sample]() float64 {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Uint8:
		return math.MaxUint8
	case reflect.Uint16:
		return math.MaxUint16
	case reflect.Uint32:
		return math.MaxUint32
	case reflect.Uint64:
		return math.MaxUint64
	case reflect.Uint, reflect.Uintptr:
		return math.MaxUint
	case reflect.Int8:
		return math.MaxInt8
	case reflect.Int16:
		return math.MaxInt16
	case reflect.Int32:
		return math.MaxInt32
	case reflect.Int64:
		return math.MaxInt64
	case reflect.Int:
		return math.MaxInt
	}
	return 1
}
