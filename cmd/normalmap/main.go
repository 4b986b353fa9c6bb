// Command normalmap reproduces the reference rasterizer's
// diffuse+normal-mapped mesh scene: a Wavefront OBJ model lit by a
// fixed directional light, with its surface normal sourced per-pixel
// from a normal map rather than interpolated per-vertex normals. The
// map's texels are read as model-space normals and transformed by the
// model's normal matrix; no tangent basis is applied.
package main

import (
	"log/slog"
	"os"

	"github.com/gogpu/swr"
	"github.com/gogpu/swr/bitmap"
	"github.com/gogpu/swr/mesh"
)

const varyingUV = 0

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

	const width, height = 600, 800
	dev, err := swr.NewDevice(width, height)
	if err != nil {
		logger.Error("create device", "error", err)
		os.Exit(1)
	}

	model, err := mesh.Load("res/diablo3_pose.obj")
	if err != nil {
		logger.Error("load mesh", "error", err)
		os.Exit(1)
	}
	diffuse, err := bitmap.LoadTGA("res/diablo3_pose_diffuse.tga")
	if err != nil {
		logger.Error("load diffuse map", "error", err)
		os.Exit(1)
	}
	normalMap, err := bitmap.LoadTGA("res/diablo3_pose_nm.tga")
	if err != nil {
		logger.Error("load normal map", "error", err)
		os.Exit(1)
	}

	eyePos := swr.V3(0, -0.5, 1.7)
	lightDir := swr.V3(1, 1, 0.85).Normalize()

	matModel := swr.Scale4(1, 1, 1)
	matView := swr.LookAtLH(eyePos, swr.V3(0, 0, 0), swr.V3(0, 1, 0))
	matProj := swr.PerspectiveFovLH(3.1415926*0.5, 6.0/8.0, 1.0, 500.0)
	matMVP := matModel.Mul(matView).Mul(matProj)
	matModelIT := swr.NormalMatrix(matModel)

	sampleNormal := func(u, v float64) swr.Vec3 {
		r, g, b, _ := normalMap.Sample2D(u, v)
		n := swr.V3(r*2-1, g*2-1, b*2-1)
		return matModelIT.MulDir(n).Normalize()
	}
	sampleDiffuse := func(u, v float64) swr.Color {
		r, g, b, a := diffuse.Sample2D(u, v)
		return swr.RGBA(r, g, b, a)
	}

	var vsPositions [3]swr.Vec3
	var vsUVs [3]swr.Vec2
	dev.SetVertexShader(func(index int, out *swr.Varying) swr.Vec4 {
		out.SetVec2(varyingUV, vsUVs[index])
		return matMVP.MulVec4(swr.V4FromVec3(vsPositions[index], 1))
	})
	dev.SetPixelShader(func(in *swr.Varying) swr.Color {
		uv := in.Vec2(varyingUV)
		n := sampleNormal(uv.X, uv.Y)
		intensity := clamp01(n.Dot(lightDir) + 0.1)
		return sampleDiffuse(uv.X, uv.Y).Mul(intensity)
	})

	for i := 0; i < model.TriangleCount(); i++ {
		ia, ib, ic := model.Triangle(i)
		vsPositions[0], vsPositions[1], vsPositions[2] = model.Positions[ia], model.Positions[ib], model.Positions[ic]
		vsUVs[0], vsUVs[1], vsUVs[2] = model.UVs[ia], model.UVs[ib], model.UVs[ic]
		dev.DrawPrimitive()
	}

	if err := dev.Save("output.bmp"); err != nil {
		logger.Error("save output", "error", err)
		os.Exit(1)
	}
}
