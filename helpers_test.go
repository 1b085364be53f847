package inpaint

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Test helper functions shared across tests.

// filledImage creates an image where every pixel holds the given channels.
func filledImage(w, h int, channels ...float32) *Image {
	img := NewImage(w, h, len(channels))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, channels...)
		}
	}
	return img
}

// texturedImage draws a gradient crossed by a few strokes.
func texturedImage(w, h int) *Image {
	dc := gg.NewContext(w, h)
	grad := gg.NewLinearGradient(0, 0, float64(w), float64(h))
	grad.AddColorStop(0, color.RGBA{R: 220, G: 40, B: 30, A: 255})
	grad.AddColorStop(0.5, color.RGBA{R: 30, G: 200, B: 60, A: 255})
	grad.AddColorStop(1, color.RGBA{R: 20, G: 50, B: 230, A: 255})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(3)
	dc.DrawLine(0, float64(h)/2, float64(w), float64(h)/3)
	dc.Stroke()
	dc.SetRGB(0, 0, 0)
	dc.DrawLine(float64(w)/3, 0, float64(w)/2, float64(h))
	dc.Stroke()

	return ImageFromImage(dc.Image())
}

// diskMask draws a filled disk on a black background.
func diskMask(w, h int, cx, cy, r float64) *Mask[uint16] {
	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(cx, cy, r)
	dc.Fill()
	return MaskFromImage(dc.Image())
}

// rectMask masks the pixels of the [x0, x1) x [y0, y1) rectangle.
func rectMask(w, h, x0, y0, x1, y1 int) *Mask[uint8] {
	m := NewMask[uint8](w, h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			m.Set(x, y, 255)
		}
	}
	return m
}

// bits returns the IEEE 754 representation of every sample.
func bits(pix []float32) []uint32 {
	out := make([]uint32, len(pix))
	for i, v := range pix {
		out[i] = math.Float32bits(v)
	}
	return out
}
