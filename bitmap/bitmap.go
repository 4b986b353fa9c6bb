// Package bitmap implements the rasterizer's bitmap container: a
// flat RGBA pixel buffer with BMP 24/32-bit load and save, additional
// PNG/WebP/TGA output, simple drawing primitives, and bilinear texture
// sampling. The core rasterizer in github.com/gogpu/swr consumes only
// New, SetPixel, and SaveBMP, through Device.Frame and Device.Save;
// Fill, DrawLine, Sample2D, and the other image formats exist for
// callers — example drivers building textures and saving alternate
// output formats, not the pixel pipeline itself.
package bitmap

import "errors"

// ErrUnsupportedFormat is returned, possibly wrapped, by LoadBMP when
// the data is not a readable 24-bit or 32-bit BMP.
var ErrUnsupportedFormat = errors.New("bitmap: unsupported or corrupt file format")

// Bitmap is a width x height buffer of packed 0xAARRGGBB pixels, stored
// row-major with the origin at the top-left corner.
type Bitmap struct {
	width, height int
	pixels        []uint32
}

// New allocates a Bitmap filled with transparent black.
func New(width, height int) *Bitmap {
	return &Bitmap{width: width, height: height, pixels: make([]uint32, width*height)}
}

// Width returns the bitmap's width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap's height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Pixels returns the raw packed-pixel buffer, row-major from the
// top-left corner. Callers must not retain a reference past the next
// mutating call.
func (b *Bitmap) Pixels() []uint32 { return b.pixels }

// Fill sets every pixel to color.
func (b *Bitmap) Fill(color uint32) {
	for i := range b.pixels {
		b.pixels[i] = color
	}
}

// SetPixel sets one pixel. Out-of-bounds coordinates are silently ignored.
func (b *Bitmap) SetPixel(x, y int, color uint32) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pixels[y*b.width+x] = color
}

// GetPixel returns one pixel's color, or 0 if out of bounds.
func (b *Bitmap) GetPixel(x, y int) uint32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pixels[y*b.width+x]
}

// DrawLine draws a line between two integer points using the integer
// midpoint (Bresenham) algorithm.
func (b *Bitmap) DrawLine(x1, y1, x2, y2 int, color uint32) {
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x2 < x1 {
		sx = -1
	}
	sy := 1
	if y2 < y1 {
		sy = -1
	}

	err := dx - dy
	x, y := x1, y1
	for {
		b.SetPixel(x, y, color)
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}
