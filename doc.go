// Package swr implements a self-contained, single-threaded CPU software
// rasterizer with a programmable vertex/pixel shader pipeline, in the
// shape of the early fixed-function-to-programmable transition in
// Direct3D and OpenGL.
//
// # Overview
//
// A [Device] owns a color frame buffer and a 1/w depth buffer. The caller
// registers a [VertexShader] and a [PixelShader], sets the three vertices
// of a triangle, and calls [Device.DrawPrimitive]. The device runs the
// vertex shader once per vertex index, rejects the triangle against the
// canonical view volume, projects surviving vertices to screen space,
// walks the triangle's integer bounding box evaluating edge equations
// under the top-left fill rule, perspective-corrects and interpolates
// the varying envelope at each covered pixel, depth-tests, and dispatches
// the pixel shader.
//
//	positions := [3]swr.Vec4{
//		swr.V4(0, 0.7, 0.9, 1),
//		swr.V4(-0.6, -0.2, 0.01, 1),
//		swr.V4(0.6, -0.2, 0.01, 1),
//	}
//	dev, _ := swr.NewDevice(800, 600)
//	dev.SetVertexShader(func(index int, out *swr.Varying) swr.Vec4 { return positions[index] })
//	dev.SetPixelShader(myPS)
//	dev.DrawPrimitive()
//	dev.Save("output.bmp")
//
// # Coordinate system
//
// Positions returned by the vertex shader are homogeneous clip-space
// coordinates in a left-handed view volume: after perspective divide,
// x and y lie in [-1,1] and z lies in [0,1]. The viewport mapping flips
// Y so that the image origin is the top-left corner, and pixel centers
// sit at half-integer coordinates.
//
// # Scope
//
// This package implements only the core pipeline described above. A
// bitmap container (github.com/gogpu/swr/bitmap) and a Wavefront-OBJ
// mesh loader (github.com/gogpu/swr/mesh) are external collaborators
// consumed through narrow interfaces, not re-specified here. There is no
// sub-triangle clipping, no antialiasing, no stencil, no alpha blending,
// and no concurrency: the device is not safe for concurrent use by
// multiple goroutines, though independent devices may run in parallel.
package swr

// Version identifies the package's public API surface.
const (
	Version      = "0.1.0"
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)
