// Command cube reproduces the reference rasterizer's textured box
// scene: a checkerboard-textured cube seen through a perspective
// camera, written out as output.bmp.
package main

import (
	"log/slog"
	"os"

	"github.com/gogpu/swr"
	"github.com/gogpu/swr/bitmap"
)

const varyingTexUV = 0

type boxVertex struct {
	pos swr.Vec3
	uv  swr.Vec2
}

// checkerTexture builds a 256x256 two-color checkerboard, the same
// pattern the reference scenes generate in-line before sampling it.
// It is generated at 4x the sampled resolution and prefiltered down,
// softening the checker edges instead of leaving them point-sampled.
func checkerTexture() *bitmap.Bitmap {
	const size = 256
	const oversample = 4
	full := bitmap.New(size*oversample, size*oversample)
	for y := 0; y < full.Height(); y++ {
		for x := 0; x < full.Width(); x++ {
			k := (x/(32*oversample) + y/(32*oversample)) & 1
			if k != 0 {
				full.SetPixel(x, y, 0xffffffff)
			} else {
				full.SetPixel(x, y, 0xff3fbcef)
			}
		}
	}
	return bitmap.Resize(full, size, size)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	swr.SetLogger(logger)

	const width, height = 800, 600
	dev, err := swr.NewDevice(width, height)
	if err != nil {
		logger.Error("create device", "error", err)
		os.Exit(1)
	}

	texture := checkerTexture()

	cube := [8]swr.Vec3{
		swr.V3(1, -1, 1), swr.V3(-1, -1, 1), swr.V3(-1, 1, 1), swr.V3(1, 1, 1),
		swr.V3(1, -1, -1), swr.V3(-1, -1, -1), swr.V3(-1, 1, -1), swr.V3(1, 1, -1),
	}

	model := swr.RotateAxis(-1, -0.5, 1, 1)
	view := swr.LookAtLH(swr.V3(3.5, 0, 0), swr.V3(0, 0, 0), swr.V3(0, 0, 1))
	proj := swr.PerspectiveFovLH(3.1415926*0.5, float64(width)/float64(height), 1.0, 500.0)
	mvp := model.Mul(view).Mul(proj)

	var vsInput [3]boxVertex
	dev.SetVertexShader(func(index int, out *swr.Varying) swr.Vec4 {
		pos := mvp.MulVec4(swr.V4FromVec3(vsInput[index].pos, 1))
		out.SetVec2(varyingTexUV, vsInput[index].uv)
		return pos
	})
	dev.SetPixelShader(func(in *swr.Varying) swr.Color {
		uv := in.Vec2(varyingTexUV)
		r, g, b, a := texture.Sample2D(uv.X, uv.Y)
		return swr.RGBA(r, g, b, a)
	})

	drawTriangle := func(a, b, c int, uvs [3]swr.Vec2) {
		vsInput[0] = boxVertex{pos: cube[a], uv: uvs[0]}
		vsInput[1] = boxVertex{pos: cube[b], uv: uvs[1]}
		vsInput[2] = boxVertex{pos: cube[c], uv: uvs[2]}
		dev.DrawPrimitive()
	}
	drawPlane := func(a, b, c, d int) {
		planeUV := [4]swr.Vec2{swr.V2(0, 0), swr.V2(0, 1), swr.V2(1, 1), swr.V2(1, 0)}
		drawTriangle(a, b, c, [3]swr.Vec2{planeUV[0], planeUV[1], planeUV[2]})
		drawTriangle(c, d, a, [3]swr.Vec2{planeUV[2], planeUV[3], planeUV[0]})
	}

	drawPlane(0, 1, 2, 3)
	drawPlane(7, 6, 5, 4)
	drawPlane(0, 4, 5, 1)
	drawPlane(1, 5, 6, 2)
	drawPlane(2, 6, 7, 3)
	drawPlane(3, 7, 4, 0)

	if err := dev.Save("output.bmp"); err != nil {
		logger.Error("save output", "error", err)
		os.Exit(1)
	}
}
