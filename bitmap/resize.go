package bitmap

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize returns a new Bitmap scaled to width x height using a
// Catmull-Rom resampling filter, for prefiltering a texture asset
// before it is handed to Sample2D (cheap mipmap-style minification
// instead of point-sampling a much larger source image per pixel).
func Resize(src *Bitmap, width, height int) *Bitmap {
	if width <= 0 || height <= 0 {
		return New(0, 0)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src.ToNRGBA(), src.ToNRGBA().Bounds(), draw.Over, nil)
	return FromImage(dst)
}
