package bitmap

import (
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// SaveWebP encodes the bitmap as a lossless WebP image.
func (b *Bitmap) SaveWebP(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-supplied by design
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return nativewebp.Encode(f, b.ToNRGBA(), nil)
}
