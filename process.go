package inpaint

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultRadius is the neighborhood radius used when a Processor has none set.
const DefaultRadius = 5

// Processor : type with processing options
type Processor struct {
	// Radius of the neighborhood a reconstructed pixel is drawn from.
	Radius int
	// Quality of the JPEG output, between 1 and 100.
	Quality int
}

func (p *Processor) radius() int {
	if p.Radius == 0 {
		return DefaultRadius
	}
	return p.Radius
}

// Process : Inpaint the masked area of the source image
func (p *Processor) Process(src, mask image.Image) (image.Image, Stats, error) {
	img := ImageFromImage(src)
	stats, err := InpaintStats(img, MaskFromImage(mask), p.radius())
	if err != nil {
		return nil, stats, err
	}
	return img.ToImage(), stats, nil
}

// ProcessReader decodes the source image and the mask read from file and
// maskFile, then inpaints the source.
func (p *Processor) ProcessReader(file, maskFile io.Reader) (image.Image, Stats, error) {
	src, _, err := image.Decode(file)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("decode source: %w", err)
	}
	mask, _, err := image.Decode(maskFile)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("decode mask: %w", err)
	}
	return p.Process(src, mask)
}

// ProcessFile inpaints the image at input with the mask at maskPath and
// stores the result at output. The output format follows its extension.
func (p *Processor) ProcessFile(input, maskPath, output string) (Stats, error) {
	src, err := gg.LoadImage(input)
	if err != nil {
		return Stats{}, fmt.Errorf("unable to open source %q: %w", input, err)
	}
	mask, err := gg.LoadImage(maskPath)
	if err != nil {
		return Stats{}, fmt.Errorf("unable to open mask %q: %w", maskPath, err)
	}

	dst, stats, err := p.Process(src, mask)
	if err != nil {
		return stats, err
	}
	Logger().Debug("inpaint: processed", "input", input, "mask", maskPath, "stats", stats)

	return stats, p.Save(output, dst)
}

// Save encodes img into the file at path, picking the encoder from the
// file extension.
func (p *Processor) Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".png" {
		return gg.SavePNG(path, img)
	}

	fq, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := p.Encode(fq, img, ext); err != nil {
		fq.Close()
		os.Remove(path)
		return err
	}
	return fq.Close()
}

// Encode writes img to w in the format named by ext (".jpg", ".bmp", ...).
func (p *Processor) Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		quality := p.Quality
		if quality == 0 {
			quality = jpeg.DefaultQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
