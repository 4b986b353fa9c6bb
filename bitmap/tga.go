package bitmap

import (
	"os"

	"github.com/ftrvxmtrx/tga"
)

// SaveTGA encodes the bitmap as a Truevision TGA image, a second
// interchange format alongside BMP used for the example drivers'
// texture assets.
func (b *Bitmap) SaveTGA(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-supplied by design
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return tga.Encode(f, b.AsImage())
}

// LoadTGA decodes a Truevision TGA image into a Bitmap.
func LoadTGA(path string) (*Bitmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-supplied by design
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	img, err := tga.Decode(f)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}
