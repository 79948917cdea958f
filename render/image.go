package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Image copies the raster into an RGBA image, one pixel per dot
func (r *Raster) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			c := r.dots[y*r.width+x]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return img
}

// WritePNG encodes the raster as PNG
func (r *Raster) WritePNG(w io.Writer) error {
	return png.Encode(w, r.Image())
}
