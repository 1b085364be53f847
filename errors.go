package inpaint

import "errors"

var (
	// ErrDimensionMismatch is returned when the image and the mask differ in size.
	ErrDimensionMismatch = errors.New("inpaint: image and mask dimensions don't match")
	// ErrShape is returned when a buffer length disagrees with its declared dimensions.
	ErrShape = errors.New("inpaint: buffer does not match its shape")
	// ErrRadius is returned for a neighborhood radius below 1.
	ErrRadius = errors.New("inpaint: radius must be at least 1")
	// ErrBandExhausted is returned when the narrow band empties while masked
	// pixels are still unresolved, e.g. when the mask covers the whole image.
	ErrBandExhausted = errors.New("inpaint: narrow band exhausted with unresolved pixels")
	// ErrUnsupportedFormat is returned when an output file extension has no encoder.
	ErrUnsupportedFormat = errors.New("inpaint: unsupported image format")
)
