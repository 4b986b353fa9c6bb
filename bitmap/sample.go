package bitmap

import "math"

// Sample2D performs bilinear filtering over normalized [0,1]^2 texture
// coordinates, wrapping u and v. It returns channels in [0,1]. This is
// invoked only by user pixel shaders — never by the core rasterizer.
func (b *Bitmap) Sample2D(u, v float64) (r, g, bl, a float64) {
	if b.width <= 0 || b.height <= 0 {
		return 0, 0, 0, 0
	}

	u = wrapUnit(u)
	v = wrapUnit(v)

	fx := u*float64(b.width) - 0.5
	fy := v*float64(b.height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	x0 = wrapIndex(x0, b.width)
	y0 = wrapIndex(y0, b.height)
	x1 := wrapIndex(x0+1, b.width)
	y1 := wrapIndex(y0+1, b.height)

	c00 := b.GetPixel(x0, y0)
	c10 := b.GetPixel(x1, y0)
	c01 := b.GetPixel(x0, y1)
	c11 := b.GetPixel(x1, y1)

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	r = channel(c00, 16)*w00 + channel(c10, 16)*w10 + channel(c01, 16)*w01 + channel(c11, 16)*w11
	g = channel(c00, 8)*w00 + channel(c10, 8)*w10 + channel(c01, 8)*w01 + channel(c11, 8)*w11
	bl = channel(c00, 0)*w00 + channel(c10, 0)*w10 + channel(c01, 0)*w01 + channel(c11, 0)*w11
	a = channel(c00, 24)*w00 + channel(c10, 24)*w10 + channel(c01, 24)*w01 + channel(c11, 24)*w11
	return r / 255, g / 255, bl / 255, a / 255
}

func channel(argb uint32, shift uint) float64 {
	return float64((argb >> shift) & 0xff)
}

func wrapUnit(x float64) float64 {
	x -= math.Floor(x)
	if x < 0 {
		x += 1
	}
	return x
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
