package inpaint

import (
	"errors"
	"math"
	"testing"
)

func normalizeOne[T Sample](v T) float32 {
	m := NewMask[T](1, 1)
	m.Pix[0] = v
	return m.Normalize()[0]
}

func TestMaskNormalize(t *testing.T) {
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{name: "uint8 max", got: normalizeOne[uint8](255), want: 1},
		{name: "uint8 zero", got: normalizeOne[uint8](0), want: 0},
		{name: "uint16 max", got: normalizeOne[uint16](math.MaxUint16), want: 1},
		{name: "uint32 max", got: normalizeOne[uint32](math.MaxUint32), want: 1},
		{name: "int8 negative", got: normalizeOne[int8](-5), want: 0},
		{name: "int16 max", got: normalizeOne[int16](math.MaxInt16), want: 1},
		{name: "int zero", got: normalizeOne(0), want: 0},
		{name: "float32 fraction", got: normalizeOne[float32](0.25), want: 0.25},
		{name: "float64 above one", got: normalizeOne[float64](2), want: 1},
		{name: "float64 NaN", got: normalizeOne(math.NaN()), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Normalize = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestMaskNormalizeSmallSample(t *testing.T) {
	// The smallest non-zero sample still masks its pixel once thresholded.
	if got := normalizeOne[uint8](1); got <= 0 || got > 0.004 {
		t.Errorf("Normalize(1) = %v, want a small positive value", got)
	}
	if got := normalizeOne[uint64](1); got <= 0 {
		t.Errorf("Normalize(1) = %v for uint64, want a positive value", got)
	}
}

func TestNewMaskFromSlice(t *testing.T) {
	if _, err := NewMaskFromSlice(3, 2, make([]int16, 5)); !errors.Is(err, ErrShape) {
		t.Errorf("err = %v, want ErrShape", err)
	}

	m, err := NewMaskFromSlice(3, 2, []int16{0, 0, 0, 0, 7, 0})
	if err != nil {
		t.Fatalf("NewMaskFromSlice: %v", err)
	}
	if got := m.At(1, 1); got != 7 {
		t.Errorf("At(1, 1) = %d, want 7", got)
	}
	if got := m.At(3, 0); got != 0 {
		t.Errorf("At outside bounds = %d, want 0", got)
	}
	if b := m.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("Bounds = %v, want 3x2", b)
	}
}

func TestNewImageFromSlice(t *testing.T) {
	if _, err := NewImageFromSlice(2, 2, 3, make([]float32, 13)); !errors.Is(err, ErrShape) {
		t.Errorf("err = %v, want ErrShape", err)
	}

	img, err := NewImageFromSlice(2, 1, 2, []float32{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("NewImageFromSlice: %v", err)
	}
	if got := img.At(1, 0); got[0] != 3 || got[1] != 4 {
		t.Errorf("At(1, 0) = %v, want [3 4]", got)
	}

	c := img.Clone()
	c.Set(0, 0, 9, 9)
	if img.Pix[0] != 1 {
		t.Error("Clone shares its buffer with the source")
	}
}
