package bitmap

import (
	"image/png"
	"os"
)

// SavePNG encodes the bitmap as PNG, for callers that want lossless
// output without the BMP container's row padding.
func (b *Bitmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-supplied by design
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return png.Encode(f, b.AsImage())
}
