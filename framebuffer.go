package swr

// frameBuffer is a flat, row-major array of packed AARRGGBB pixels.
// Contiguous storage beats a pointer-of-pointer layout; offsets are
// computed as y*width + x.
type frameBuffer struct {
	width, height int
	pixels        []uint32
}

func newFrameBuffer(width, height int) *frameBuffer {
	return &frameBuffer{width: width, height: height, pixels: make([]uint32, width*height)}
}

func (f *frameBuffer) at(x, y int) uint32 { return f.pixels[y*f.width+x] }

func (f *frameBuffer) set(x, y int, c uint32) { f.pixels[y*f.width+x] = c }

func (f *frameBuffer) fill(c uint32) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// depthBuffer is a flat, row-major array storing the per-pixel 1/w
// (rhw) of the currently shaded fragment. Larger values are nearer.
type depthBuffer struct {
	width, height int
	rhw           []float32
}

func newDepthBuffer(width, height int) *depthBuffer {
	return &depthBuffer{width: width, height: height, rhw: make([]float32, width*height)}
}

func (d *depthBuffer) at(x, y int) float32 { return d.rhw[y*d.width+x] }

func (d *depthBuffer) set(x, y int, v float32) { d.rhw[y*d.width+x] = v }

func (d *depthBuffer) clear() {
	for i := range d.rhw {
		d.rhw[i] = 0
	}
}
