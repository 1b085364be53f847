package inpaint

import (
	"fmt"
	"image"
)

// Image is a dense floating point raster with interleaved channels.
// The sample of channel c at (x, y) is Pix[(y*Width+x)*Channels+c].
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []float32
	// Depth is the bit depth the samples are scaled to when converted from
	// or to an image.Image: 8 for 0..255, 16 for 0..65535. Zero means 8.
	Depth int
}

// NewImage allocates a zeroed image.
func NewImage(width, height, channels int) *Image {
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]float32, width*height*channels),
	}
}

// NewImageFromSlice wraps pix without copying it.
func NewImageFromSlice(width, height, channels int, pix []float32) (*Image, error) {
	img := &Image{Width: width, Height: height, Channels: channels, Pix: pix}
	if err := img.validate(); err != nil {
		return nil, err
	}
	return img, nil
}

func (img *Image) validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrShape)
	}
	if img.Width < 0 || img.Height < 0 || img.Channels < 1 {
		return fmt.Errorf("%w: image %dx%dx%d", ErrShape, img.Width, img.Height, img.Channels)
	}
	if want := img.Width * img.Height * img.Channels; len(img.Pix) != want {
		return fmt.Errorf("%w: image %dx%dx%d holds %d samples, want %d",
			ErrShape, img.Width, img.Height, img.Channels, len(img.Pix), want)
	}
	return nil
}

// Bounds returns the image dimensions as an image.Rectangle.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// PixOffset returns the index of the first channel of (x, y) in Pix.
func (img *Image) PixOffset(x, y int) int {
	return (y*img.Width + x) * img.Channels
}

// At returns the channels of (x, y). The returned slice aliases Pix.
func (img *Image) At(x, y int) []float32 {
	i := img.PixOffset(x, y)
	return img.Pix[i : i+img.Channels : i+img.Channels]
}

// Set writes the channels of (x, y). Extra values are ignored.
func (img *Image) Set(x, y int, values ...float32) {
	copy(img.At(x, y), values)
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	pix := make([]float32, len(img.Pix))
	copy(pix, img.Pix)
	return &Image{Width: img.Width, Height: img.Height, Channels: img.Channels, Pix: pix, Depth: img.Depth}
}
