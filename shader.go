package swr

// VertexShader is invoked once per vertex index (always one of 0, 1, 2)
// of the primitive currently bound by DrawPrimitive. It must return the
// vertex's homogeneous clip-space position, and may populate out with
// any varyings the pixel shader will read. out is already cleared when
// the shader is invoked.
//
// A VertexShader is an ordinary Go closure; it owns whatever per-draw
// vertex data (positions, colors, UVs, normals) it needs to look up by
// index — the rasterizer never inspects that data itself.
type VertexShader func(index int, out *Varying) Vec4

// PixelShader is invoked once per covered, depth-tested pixel with the
// perspective-correct interpolation of the three vertices' varyings. It
// returns the pixel's color; channels are nominally in [0,1] but are
// clamped at pack time, so a shader may intentionally overshoot.
type PixelShader func(in *Varying) Color
