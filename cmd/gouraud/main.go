// Command gouraud reproduces the reference rasterizer's lit box
// scene: the same checkerboard cube as cmd/cube, shaded with a
// per-vertex Lambertian light intensity computed in the vertex shader
// and multiplied onto the sampled texture color in the pixel shader —
// the textbook Gouraud-shading split of work between VS and PS.
package main

import (
	"log/slog"
	"os"

	"github.com/gogpu/swr"
	"github.com/gogpu/swr/bitmap"
)

const (
	varyingTexUV = 0
	varyingLight = 1
)

type boxVertex struct {
	pos    swr.Vec3
	uv     swr.Vec2
	normal swr.Vec3
}

func checkerTexture() *bitmap.Bitmap {
	const size = 256
	tex := bitmap.New(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			k := (x/32 + y/32) & 1
			if k != 0 {
				tex.SetPixel(x, y, 0xffffffff)
			} else {
				tex.SetPixel(x, y, 0xff3fbcef)
			}
		}
	}
	return tex
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
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
	lightDir := swr.V3(1, 0, 2).Normalize()

	var vsInput [3]boxVertex
	dev.SetVertexShader(func(index int, out *swr.Varying) swr.Vec4 {
		v := vsInput[index]
		pos := mvp.MulVec4(swr.V4FromVec3(v.pos, 1))
		worldNormal := model.MulDir(v.normal)
		intensity := clamp01(worldNormal.Dot(lightDir) + 0.1)
		out.SetVec2(varyingTexUV, v.uv)
		out.SetScalar(varyingLight, intensity)
		return pos
	})
	dev.SetPixelShader(func(in *swr.Varying) swr.Color {
		uv := in.Vec2(varyingTexUV)
		r, g, b, a := texture.Sample2D(uv.X, uv.Y)
		light := in.Scalar(varyingLight)
		return swr.RGBA(r*light, g*light, b*light, a)
	})

	drawTriangle := func(a, b, c int, uvs [3]swr.Vec2) {
		ab := cube[b].Sub(cube[a])
		ac := cube[c].Sub(cube[a])
		normal := ac.Cross(ab).Normalize()
		vsInput[0] = boxVertex{pos: cube[a], uv: uvs[0], normal: normal}
		vsInput[1] = boxVertex{pos: cube[b], uv: uvs[1], normal: normal}
		vsInput[2] = boxVertex{pos: cube[c], uv: uvs[2], normal: normal}
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
