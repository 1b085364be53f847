package inpaint

import (
	"image"
	"image/color"
	"math"
)

// ImageFromImage converts src into a floating point Image. Gray sources give
// a single channel image, every other source gives four non-premultiplied
// RGBA channels. Samples keep the source bit depth: 16-bit sources
// (*image.Gray16, *image.RGBA64, *image.NRGBA64 and other 64-bit color
// models) are scaled to 0..65535, everything else to 0..255.
func ImageFromImage(src image.Image) *Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch s := src.(type) {
	case *image.Gray:
		dst := NewImage(w, h, 1)
		dst.Depth = 8
		for y := 0; y < h; y++ {
			si := s.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			di := dst.PixOffset(0, y)
			for x := 0; x < w; x++ {
				dst.Pix[di+x] = float32(s.Pix[si+x])
			}
		}
		return dst
	case *image.Gray16:
		dst := NewImage(w, h, 1)
		dst.Depth = 16
		for y := 0; y < h; y++ {
			si := s.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			di := dst.PixOffset(0, y)
			for x := 0; x < w; x++ {
				dst.Pix[di+x] = float32(uint16(s.Pix[si+2*x])<<8 | uint16(s.Pix[si+2*x+1]))
			}
		}
		return dst
	}

	if is16Bit(src) {
		nrgba := toNRGBA64(src)
		dst := NewImage(w, h, 4)
		dst.Depth = 16
		for i := range dst.Pix {
			dst.Pix[i] = float32(uint16(nrgba.Pix[2*i])<<8 | uint16(nrgba.Pix[2*i+1]))
		}
		return dst
	}

	nrgba := toNRGBA(src)
	dst := NewImage(w, h, 4)
	dst.Depth = 8
	for i, v := range nrgba.Pix[:w*h*4] {
		dst.Pix[i] = float32(v)
	}
	return dst
}

// is16Bit reports whether src stores more than 8 bits per channel.
func is16Bit(src image.Image) bool {
	switch src.(type) {
	case *image.Gray16, *image.RGBA64, *image.NRGBA64:
		return true
	}
	m := src.ColorModel()
	return m == color.Gray16Model || m == color.RGBA64Model || m == color.NRGBA64Model
}

// ToImage converts img back into an image.Image, rounding and clamping
// every sample. One channel gives a gray image, two channels are read as
// gray and alpha, three as RGB and four as non-premultiplied RGBA.
// A Depth of 16 gives *image.Gray16 or *image.NRGBA64, otherwise the
// result is *image.Gray or *image.NRGBA.
func (img *Image) ToImage() image.Image {
	rect := img.Bounds()
	if img.Depth == 16 {
		if img.Channels == 1 {
			dst := image.NewGray16(rect)
			for i, v := range img.Pix {
				dst.Pix[2*i] = uint8(clampUint16(v) >> 8)
				dst.Pix[2*i+1] = uint8(clampUint16(v))
			}
			return dst
		}
		dst := image.NewNRGBA64(rect)
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				c := expandChannels(img.At(x, y), 0xffff)
				dst.SetNRGBA64(x, y, color.NRGBA64{
					R: clampUint16(c[0]), G: clampUint16(c[1]), B: clampUint16(c[2]), A: clampUint16(c[3]),
				})
			}
		}
		return dst
	}

	if img.Channels == 1 {
		dst := image.NewGray(rect)
		for i, v := range img.Pix {
			dst.Pix[i] = clampUint8(v)
		}
		return dst
	}

	dst := image.NewNRGBA(rect)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := expandChannels(img.At(x, y), 0xff)
			dst.SetNRGBA(x, y, color.NRGBA{
				R: clampUint8(c[0]), G: clampUint8(c[1]), B: clampUint8(c[2]), A: clampUint8(c[3]),
			})
		}
	}
	return dst
}

// expandChannels maps a pixel of two, three or four channels onto RGBA.
func expandChannels(px []float32, opaque float32) [4]float32 {
	switch len(px) {
	case 2:
		return [4]float32{px[0], px[0], px[0], px[1]}
	case 3:
		return [4]float32{px[0], px[1], px[2], opaque}
	}
	return [4]float32{px[0], px[1], px[2], px[3]}
}

// MaskFromImage builds a mask from the luminance of src.
// Every pixel brighter than pure black is masked.
func MaskFromImage(src image.Image) *Mask[uint16] {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewMask[uint16](w, h)

	switch s := src.(type) {
	case *image.Gray:
		for y := 0; y < h; y++ {
			si := s.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < w; x++ {
				mask.Pix[y*w+x] = uint16(s.Pix[si+x]) * 0x101
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.Gray16Model.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray16)
				mask.Pix[y*w+x] = c.Y
			}
		}
	}
	return mask
}

func clampUint8(v float32) uint8 {
	switch {
	case v != v || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(float64(v)))
}

func clampUint16(v float32) uint16 {
	switch {
	case v != v || v <= 0:
		return 0
	case v >= 0xffff:
		return 0xffff
	}
	return uint16(math.Round(float64(v)))
}

// toNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok && src0.Stride == 4*srcBounds.Dx() {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := dstW * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				srcX := srcMinX + dstX
				srcY := srcMinY + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}

	return dst
}

// toNRGBA64 converts any image type to *image.NRGBA64 with min-point at (0, 0).
func toNRGBA64(img image.Image) *image.NRGBA64 {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA64); ok && src0.Stride == 8*srcBounds.Dx() {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dst := image.NewNRGBA64(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA64:
		rowSize := dstBounds.Dx() * 8
		for dstY := 0; dstY < dstBounds.Dy(); dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	default:
		for dstY := 0; dstY < dstBounds.Dy(); dstY++ {
			for dstX := 0; dstX < dstBounds.Dx(); dstX++ {
				c := color.NRGBA64Model.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA64)
				dst.SetNRGBA64(dstX, dstY, c)
			}
		}
	}

	return dst
}
