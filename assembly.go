package swr

import "math"

// vertex is the transient per-draw record produced by primitive
// assembly: the post-divide homogeneous position, its reciprocal w,
// the floating-point and integer-rounded screen-space positions, and
// the varying envelope the vertex shader populated.
type vertex struct {
	pos     Vec4
	rhw     float64
	spf     Vec2
	spi     [2]int
	varying Varying
}

// rejected reports whether pos lies outside the canonical view volume:
// w==0, or z outside [0,w], or x or y outside [-w,w].
func rejected(pos Vec4) bool {
	if pos.W == 0 {
		return true
	}
	if pos.Z < 0 || pos.Z > pos.W {
		return true
	}
	if pos.X < -pos.W || pos.X > pos.W {
		return true
	}
	if pos.Y < -pos.W || pos.Y > pos.W {
		return true
	}
	return false
}

// roundHalfUp implements spi = floor(spf + 0.5), the half-pixel
// rounding convention used to snap a floating-point screen position to
// its covered integer pixel.
func roundHalfUp(x float64) int { return int(math.Floor(x + 0.5)) }

// project runs the homogeneous-space trivial reject, perspective
// divide, and viewport mapping for one vertex. Returns false if the
// vertex is rejected.
func (d *Device) project(v *vertex, pos Vec4) bool {
	if rejected(pos) {
		return false
	}
	rhw := 1 / pos.W
	v.rhw = rhw
	v.pos = pos.Mul(rhw)
	spfx := (v.pos.X + 1) * float64(d.width) / 2
	spfy := (1 - v.pos.Y) * float64(d.height) / 2
	v.spf = V2(spfx, spfy)
	v.spi = [2]int{roundHalfUp(spfx), roundHalfUp(spfy)}
	return true
}

// orient applies the orientation fix of §4.3: rather than back-face
// culling, a triangle wound the "wrong" way in post-divide NDC is
// reoriented by swapping vertices 1 and 2. Degenerate triangles — zero
// facing normal, or zero signed area on the integer screen grid — are
// rejected.
func orient(v0, v1, v2 *vertex) (*vertex, *vertex, *vertex, bool) {
	e01 := V2(v1.pos.X-v0.pos.X, v1.pos.Y-v0.pos.Y)
	e02 := V2(v2.pos.X-v0.pos.X, v2.pos.Y-v0.pos.Y)
	normalZ := e01.Cross(e02)
	if normalZ == 0 {
		return nil, nil, nil, false
	}
	if normalZ > 0 {
		v1, v2 = v2, v1
	}

	p0 := V2(float64(v0.spi[0]), float64(v0.spi[1]))
	p1 := V2(float64(v1.spi[0]), float64(v1.spi[1]))
	p2 := V2(float64(v2.spi[0]), float64(v2.spi[1]))
	area := p1.Sub(p0).Cross(p2.Sub(p0))
	if area == 0 {
		return nil, nil, nil, false
	}
	return v0, v1, v2, true
}

// boundsClamped returns the integer screen-space bounding box of the
// three vertices, clamped to the frame buffer's extent.
func boundsClamped(v0, v1, v2 *vertex, width, height int) (minX, minY, maxX, maxY int) {
	minX = min(v0.spi[0], min(v1.spi[0], v2.spi[0]))
	minY = min(v0.spi[1], min(v1.spi[1], v2.spi[1]))
	maxX = max(v0.spi[0], max(v1.spi[0], v2.spi[0]))
	maxY = max(v0.spi[1], max(v1.spi[1], v2.spi[1]))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > width-1 {
		maxX = width - 1
	}
	if maxY > height-1 {
		maxY = height - 1
	}
	return
}
