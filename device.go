package swr

import "github.com/gogpu/swr/bitmap"

// Device is the rasterizer: it owns a color frame buffer and a 1/w
// depth buffer of fixed width and height, the currently registered
// vertex and pixel shaders, and render state (clear colors, wireframe
// and fill flags). A Device is not safe for concurrent use; independent
// Devices may run on separate goroutines.
type Device struct {
	width, height int

	frame *frameBuffer
	depth *depthBuffer

	vs VertexShader
	ps PixelShader

	background Color
	foreground Color
	wireframe  bool
	fill       bool

	psInput Varying
}

// DeviceOption configures a Device at construction time.
type DeviceOption func(*Device)

// WithClearColors sets the initial background and foreground colors,
// overriding the defaults (midnight blue background, white foreground).
func WithClearColors(background, foreground Color) DeviceOption {
	return func(d *Device) {
		d.background = background
		d.foreground = foreground
	}
}

// WithRenderState sets the initial wireframe/fill flags.
func WithRenderState(wireframe, fill bool) DeviceOption {
	return func(d *Device) {
		d.wireframe = wireframe
		d.fill = fill
	}
}

// NewDevice allocates a Device with a width x height frame and depth
// buffer, cleared to the default (or option-supplied) background color
// and a zero depth buffer.
func NewDevice(width, height int, opts ...DeviceOption) (*Device, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	d := &Device{
		width:      width,
		height:     height,
		background: UnpackColor(0xff191970),
		foreground: UnpackColor(0xffffffff),
		fill:       true,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.frame = newFrameBuffer(width, height)
	d.depth = newDepthBuffer(width, height)
	d.Clear()
	Logger().Debug("device initialized", "width", width, "height", height)
	return d, nil
}

// Width returns the frame buffer's width in pixels.
func (d *Device) Width() int { return d.width }

// Height returns the frame buffer's height in pixels.
func (d *Device) Height() int { return d.height }

// SetVertexShader replaces the current vertex shader.
func (d *Device) SetVertexShader(vs VertexShader) { d.vs = vs }

// SetPixelShader replaces the current pixel shader.
func (d *Device) SetPixelShader(ps PixelShader) { d.ps = ps }

// SetBackground sets the color used by Clear to fill the frame buffer.
func (d *Device) SetBackground(c Color) { d.background = c }

// SetForeground sets the wireframe overlay's line color.
func (d *Device) SetForeground(c Color) { d.foreground = c }

// SetRenderState sets the wireframe and fill flags: wireframe draws the
// triangle's three edges in the foreground color; fill rasterizes
// covered pixels through the pixel shader. Both may be set.
func (d *Device) SetRenderState(wireframe, fill bool) {
	d.wireframe = wireframe
	d.fill = fill
}

// Clear fills the frame buffer with the background color and zeroes
// the depth buffer.
func (d *Device) Clear() {
	d.frame.fill(d.background.Pack())
	d.depth.clear()
}

// DrawPrimitive runs the pipeline for the triangle whose three vertices
// are produced by invoking the vertex shader with indices 0, 1, 2.
// Returns false and leaves the frame buffer unmodified if no vertex
// shader is set, if any vertex is rejected against the view volume, or
// if the wireframe overlay is off and fill is enabled but the triangle
// is degenerate. Returns true if the wireframe overlay or the pixel
// fill (or both) ran; a degenerate triangle still gets its wireframe
// overlay when that is on.
func (d *Device) DrawPrimitive() bool {
	if d.vs == nil || d.frame == nil {
		Logger().Warn("draw primitive with no vertex shader or uninitialized device")
		return false
	}

	var verts [3]vertex
	for k := 0; k < 3; k++ {
		verts[k].varying.reset()
		pos := d.vs(k, &verts[k].varying)
		if !d.project(&verts[k], pos) {
			Logger().Debug("triangle rejected against view volume", "vertex", k)
			return false
		}
	}

	drewWireframe := false
	if d.wireframe {
		d.drawWireframe(&verts[0], &verts[1], &verts[2])
		drewWireframe = true
	}

	if !d.fill {
		return drewWireframe
	}

	v0, v1, v2, ok := orient(&verts[0], &verts[1], &verts[2])
	if !ok {
		Logger().Debug("triangle degenerate, fill skipped")
		return drewWireframe
	}

	d.rasterizeTriangle(v0, v1, v2)

	if d.wireframe {
		d.drawWireframe(&verts[0], &verts[1], &verts[2])
	}

	return true
}

// Reset releases the device's buffers. The device must be reinitialized
// via NewDevice before it can draw again.
func (d *Device) Reset() {
	d.frame = nil
	d.depth = nil
	d.vs = nil
	d.ps = nil
}

// Frame copies the current contents of the color frame buffer into a
// new bitmap.Bitmap, for display or encoding to a file. Returns nil if
// the device has no frame buffer (after Reset).
func (d *Device) Frame() *bitmap.Bitmap {
	if d.frame == nil {
		return nil
	}
	b := bitmap.New(d.width, d.height)
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			b.SetPixel(x, y, d.frame.at(x, y))
		}
	}
	return b
}

// Save writes the current frame buffer to path as a BMP file, the
// format the reference rasterizer's RenderHelp::SaveFile writes. Use
// Frame and the bitmap package's other Save* methods for PNG/WebP/TGA
// output.
func (d *Device) Save(path string) error {
	if d.frame == nil {
		return ErrNoFrame
	}
	return d.Frame().SaveBMP(path, false)
}
