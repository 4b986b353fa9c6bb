package bitmap

import (
	"image"
	"image/color"
)

// ToNRGBA converts the bitmap to a standard image.NRGBA, the format
// consumed by the stdlib PNG encoder and the third-party WebP/TGA
// encoders wired below.
func (b *Bitmap) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.GetPixel(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = byte(c >> 16)
			img.Pix[i+1] = byte(c >> 8)
			img.Pix[i+2] = byte(c)
			img.Pix[i+3] = byte(c >> 24)
		}
	}
	return img
}

// FromImage builds a Bitmap from any image.Image, for loading textures
// decoded by a stdlib or third-party codec.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	b := New(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			c := uint32(a>>8)<<24 | uint32(r>>8)<<16 | uint32(g>>8)<<8 | uint32(bl>>8)
			b.SetPixel(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}
	return b
}

var _ image.Image = (*imageAdapter)(nil)

// imageAdapter exposes a Bitmap as an image.Image without copying its
// pixel buffer, for encoders that only read through the interface.
type imageAdapter struct{ b *Bitmap }

// AsImage wraps the bitmap in an image.Image view for use with
// encoders that accept the standard interface.
func (b *Bitmap) AsImage() image.Image { return imageAdapter{b: b} }

func (a imageAdapter) ColorModel() color.Model { return color.NRGBAModel }
func (a imageAdapter) Bounds() image.Rectangle { return image.Rect(0, 0, a.b.width, a.b.height) }
func (a imageAdapter) At(x, y int) color.Color {
	c := a.b.GetPixel(x, y)
	return color.NRGBA{R: byte(c >> 16), G: byte(c >> 8), B: byte(c), A: byte(c >> 24)}
}
