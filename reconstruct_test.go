package inpaint

import (
	"testing"
)

func TestAxisGradient(t *testing.T) {
	tests := []struct {
		name       string
		prev, next Flag
		want       float32
	}{
		{name: "central", prev: Known, next: Band, want: 1},
		{name: "previous only", prev: Known, next: Inside, want: 4},
		{name: "next only", prev: Inside, next: Known, want: -2},
		{name: "none", prev: Inside, next: Inside, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := newFlagGrid(3, 1)
			flags.data = []Flag{tt.prev, Inside, tt.next}
			dist := newDistanceField(3, 1)
			dist.data = []float32{1, 5, 3}

			if got := axisGradient(5, 0, 0, 2, 0, dist, flags); got != tt.want {
				t.Errorf("axisGradient = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGradientAtBorder(t *testing.T) {
	flags := newFlagGrid(2, 2)
	flags.data = []Flag{Inside, Known, Known, Known}
	dist := newDistanceField(2, 2)
	dist.data = []float32{2, 3, 0.5, 1}

	gx, gy := gradient(0, 0, dist, flags)
	if gx != 1 {
		t.Errorf("gx = %v, want 1", gx)
	}
	if gy != -1.5 {
		t.Errorf("gy = %v, want -1.5", gy)
	}
}

func TestFillSkipsInsidePixels(t *testing.T) {
	img := filledImage(3, 3, 8)
	img.Set(2, 2, 1000)

	flags := newFlagGrid(3, 3)
	flags.set(1, 1, Inside)
	flags.set(2, 2, Inside)
	dist := newDistanceField(3, 3)
	for i := range dist.data {
		dist.data[i] = 0
	}
	dist.set(1, 1, 1)

	newReconstructor(2, 1).fill(img, 1, 1, dist, flags)
	if got := img.At(1, 1)[0]; got != 8 {
		t.Errorf("filled value = %v, want 8", got)
	}
	if got := img.At(2, 2)[0]; got != 1000 {
		t.Errorf("inside pixel changed to %v", got)
	}
}

func TestFillRespectsRadius(t *testing.T) {
	// A 5x1 strip: the far pixels lie outside radius 1 and must not contribute.
	img := NewImage(5, 1, 1)
	copy(img.Pix, []float32{100, 4, 0, 4, 100})

	flags := newFlagGrid(5, 1)
	flags.set(2, 0, Inside)
	dist := newDistanceField(5, 1)
	for i := range dist.data {
		dist.data[i] = 0
	}
	dist.set(2, 0, 1)

	newReconstructor(1, 1).fill(img, 2, 0, dist, flags)
	if got := img.At(2, 0)[0]; got != 4 {
		t.Errorf("filled value = %v, want 4", got)
	}
}
