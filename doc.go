/*
Package inpaint reconstructs missing or damaged regions of raster images
using the fast marching method described by Alexandru Telea in
"An Image Inpainting Technique Based on the Fast Marching Method" (2004).

The masked region is filled from its border inward. Pixels are visited in
increasing distance to the mask boundary and every visited pixel receives the
weighted average of the known pixels around it, favoring pixels close to it,
on the same distance level and aligned with the propagation direction.

The package provides a command line utility as well.
Check the supported commands by typing:

	$ inpaint --help

Example to inpaint an image held in memory:

	package main

	import (
		"fmt"
		"github.com/esimov/inpaint"
	)

	func main() {
		img := inpaint.NewImage(width, height, 3)
		mask := inpaint.NewMask[uint8](width, height)
		// Fill the image and set the mask pixels to 255 where the image is damaged.

		if err := inpaint.Inpaint(img, mask, 5); err != nil {
			fmt.Printf("Error on inpainting process: %s", err.Error())
		}
	}

Example to inpaint an image file:

	package main

	import (
		"fmt"
		"github.com/esimov/inpaint"
	)

	func main() {
		p := &inpaint.Processor{Radius: 5}

		if _, err := p.ProcessFile("input.png", "mask.png", "output.png"); err != nil {
			fmt.Printf("Error on inpainting process: %s", err.Error())
		}
	}

The inpainting itself runs on a single goroutine: each reconstructed pixel
depends on the ones finalized before it.
*/
package inpaint
