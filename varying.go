package swr

// Varying is a heterogeneous bag of per-vertex shader outputs, keyed by
// a caller-chosen integer id. It offers four disjoint, independently-
// keyed namespaces — scalar, Vec2, Vec3, Vec4 — so the same integer key
// may be reused across kinds without collision. A vertex shader
// populates a Varying; the rasterizer perspective-interpolates it per
// covered pixel into a fresh Varying the pixel shader reads.
type Varying struct {
	scalar map[int]float64
	vec2   map[int]Vec2
	vec3   map[int]Vec3
	vec4   map[int]Vec4
}

// reset empties every namespace without discarding the backing maps,
// matching the invariant that the envelope is cleared at the start of
// each vertex shader invocation.
func (v *Varying) reset() {
	for k := range v.scalar {
		delete(v.scalar, k)
	}
	for k := range v.vec2 {
		delete(v.vec2, k)
	}
	for k := range v.vec3 {
		delete(v.vec3, k)
	}
	for k := range v.vec4 {
		delete(v.vec4, k)
	}
}

// SetScalar stores a scalar varying under key.
func (v *Varying) SetScalar(key int, f float64) {
	if v.scalar == nil {
		v.scalar = make(map[int]float64)
	}
	v.scalar[key] = f
}

// SetVec2 stores a Vec2 varying under key.
func (v *Varying) SetVec2(key int, val Vec2) {
	if v.vec2 == nil {
		v.vec2 = make(map[int]Vec2)
	}
	v.vec2[key] = val
}

// SetVec3 stores a Vec3 varying under key.
func (v *Varying) SetVec3(key int, val Vec3) {
	if v.vec3 == nil {
		v.vec3 = make(map[int]Vec3)
	}
	v.vec3[key] = val
}

// SetVec4 stores a Vec4 varying under key.
func (v *Varying) SetVec4(key int, val Vec4) {
	if v.vec4 == nil {
		v.vec4 = make(map[int]Vec4)
	}
	v.vec4[key] = val
}

// Scalar returns the scalar varying stored under key, or zero if absent.
func (v *Varying) Scalar(key int) float64 { return v.scalar[key] }

// Vec2 returns the Vec2 varying stored under key, or the zero vector if absent.
func (v *Varying) Vec2(key int) Vec2 { return v.vec2[key] }

// Vec3 returns the Vec3 varying stored under key, or the zero vector if absent.
func (v *Varying) Vec3(key int) Vec3 { return v.vec3[key] }

// Vec4 returns the Vec4 varying stored under key, or the zero vector if absent.
func (v *Varying) Vec4(key int) Vec4 { return v.vec4[key] }

// interpolateVarying produces the pixel shader's input envelope from the three
// vertices' output envelopes, using perspective-correct weights c0,c1,c2
// that already include each vertex's rhw and the shared w. Only the
// keys present in v0 are visited — a key absent from v1 or v2 reads back
// as zero for that vertex, per the "missing implies zero" resolution of
// the reference implementation's default-constructing map lookup.
func interpolateVarying(out *Varying, v0, v1, v2 *Varying, c0, c1, c2 float64) {
	out.reset()
	for key := range v0.scalar {
		out.SetScalar(key, c0*v0.scalar[key]+c1*v1.scalar[key]+c2*v2.scalar[key])
	}
	for key := range v0.vec2 {
		a, b, c := v0.vec2[key], v1.vec2[key], v2.vec2[key]
		out.SetVec2(key, Vec2{X: c0*a.X + c1*b.X + c2*c.X, Y: c0*a.Y + c1*b.Y + c2*c.Y})
	}
	for key := range v0.vec3 {
		a, b, c := v0.vec3[key], v1.vec3[key], v2.vec3[key]
		out.SetVec3(key, Vec3{
			X: c0*a.X + c1*b.X + c2*c.X,
			Y: c0*a.Y + c1*b.Y + c2*c.Y,
			Z: c0*a.Z + c1*b.Z + c2*c.Z,
		})
	}
	for key := range v0.vec4 {
		a, b, c := v0.vec4[key], v1.vec4[key], v2.vec4[key]
		out.SetVec4(key, Vec4{
			X: c0*a.X + c1*b.X + c2*c.X,
			Y: c0*a.Y + c1*b.Y + c2*c.Y,
			Z: c0*a.Z + c1*b.Z + c2*c.Z,
			W: c0*a.W + c1*b.W + c2*c.W,
		})
	}
}
