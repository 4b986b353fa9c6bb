package swr

// edgeFunction evaluates one of the three integer edge equations at
// pixel (cx,cy) for the directed edge a->b, per §4.4:
//
//	E = -(cx-a.x)*(b.y-a.y) + (cy-a.y)*(b.x-a.x)
//
// Signs are arranged so all three edge functions are >= 0 strictly
// inside a counter-clockwise (in screen space) triangle.
func edgeFunction(cx, cy int, a, b [2]int) int {
	return -(cx-a[0])*(b[1]-a[1]) + (cy-a[1])*(b[0]-a[0])
}

// isTopLeft reports whether the directed edge a->b is a "top" or
// "left" edge of a screen-space (Y-down) triangle: purely horizontal
// going rightward, or going strictly upward (a.y > b.y). Under
// edgeFunction's signs the interior lies below a rightward edge and to
// the right of an upward edge.
func isTopLeft(a, b [2]int) bool {
	if a[1] == b[1] {
		return a[0] < b[0]
	}
	return a[1] > b[1]
}

func edgeBias(topLeft bool) int {
	if topLeft {
		return 0
	}
	return 1
}

// rasterizeTriangle walks the clamped bounding box, applies the
// top-left coverage rule, perspective-corrects and interpolates
// varyings, depth-tests, and dispatches the pixel shader for every
// covered, surviving pixel.
func (d *Device) rasterizeTriangle(v0, v1, v2 *vertex) {
	minX, minY, maxX, maxY := boundsClamped(v0, v1, v2, d.width, d.height)

	p0i, p1i, p2i := v0.spi, v1.spi, v2.spi
	top01 := isTopLeft(p0i, p1i)
	top12 := isTopLeft(p1i, p2i)
	top20 := isTopLeft(p2i, p0i)
	bias01, bias12, bias20 := edgeBias(top01), edgeBias(top12), edgeBias(top20)

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			e01 := edgeFunction(cx, cy, p0i, p1i)
			e12 := edgeFunction(cx, cy, p1i, p2i)
			e20 := edgeFunction(cx, cy, p2i, p0i)
			if e01 < bias01 || e12 < bias12 || e20 < bias20 {
				continue
			}

			px := V2(float64(cx)+0.5, float64(cy)+0.5)
			s0 := v0.spf.Sub(px)
			s1 := v1.spf.Sub(px)
			s2 := v2.spf.Sub(px)

			a := absFloat(s1.Cross(s2))
			b := absFloat(s2.Cross(s0))
			c := absFloat(s0.Cross(s1))
			sum := a + b + c
			if sum == 0 {
				continue
			}
			a /= sum
			b /= sum
			c /= sum

			rhw := v0.rhw*a + v1.rhw*b + v2.rhw*c
			if float32(rhw) < d.depth.at(cx, cy) {
				continue
			}
			d.depth.set(cx, cy, float32(rhw))

			w := 1.0
			if rhw != 0 {
				w = 1 / rhw
			}
			c0 := v0.rhw * a * w
			c1 := v1.rhw * b * w
			c2 := v2.rhw * c * w

			interpolateVarying(&d.psInput, &v0.varying, &v1.varying, &v2.varying, c0, c1, c2)

			if d.ps == nil {
				continue
			}
			color := d.ps(&d.psInput)
			d.frame.set(cx, cy, color.Pack())
		}
	}
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// drawWireframe draws the three edges of the triangle in the device's
// foreground color using an integer midpoint line algorithm.
func (d *Device) drawWireframe(v0, v1, v2 *vertex) {
	fg := d.foreground.Pack()
	d.drawLine(v0.spi, v1.spi, fg)
	d.drawLine(v1.spi, v2.spi, fg)
	d.drawLine(v2.spi, v0.spi, fg)
}

// drawLine draws a line between two integer screen points using the
// integer midpoint (Bresenham) algorithm.
func (d *Device) drawLine(a, b [2]int, color uint32) {
	x0, y0 := a[0], a[1]
	x1, y1 := b[0], b[1]

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x1 < x0 {
		sx = -1
	}
	sy := 1
	if y1 < y0 {
		sy = -1
	}

	err := dx - dy
	x, y := x0, y0
	for {
		d.setPixelClamped(x, y, color)
		if x == x1 && y == y1 {
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

func (d *Device) setPixelClamped(x, y int, color uint32) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.frame.set(x, y, color)
}
