// Command specular reproduces the reference rasterizer's
// diffuse+normal+specular mesh scene: the same OBJ model as
// cmd/normalmap, with a Phong (reflected light vector) specular term added from a
// per-pixel shininess map and the eye direction carried through the
// varying envelope as a Vec3.
package main

import (
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/swr"
	"github.com/gogpu/swr/bitmap"
	"github.com/gogpu/swr/mesh"
)

const (
	varyingUV  = 0
	varyingEye = 1
)

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
	specMap, err := bitmap.LoadTGA("res/diablo3_pose_spec.tga")
	if err != nil {
		logger.Error("load specular map", "error", err)
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
	sampleShininess := func(u, v float64) float64 {
		r, _, _, _ := specMap.Sample2D(u, v)
		return r * 255
	}

	var vsPositions [3]swr.Vec3
	var vsUVs [3]swr.Vec2
	dev.SetVertexShader(func(index int, out *swr.Varying) swr.Vec4 {
		pos := vsPositions[index]
		worldPos := matModel.MulPoint(pos)
		out.SetVec2(varyingUV, vsUVs[index])
		out.SetVec3(varyingEye, eyePos.Sub(worldPos))
		return matMVP.MulVec4(swr.V4FromVec3(pos, 1))
	})
	dev.SetPixelShader(func(in *swr.Varying) swr.Color {
		uv := in.Vec2(varyingUV)
		eyeDir := in.Vec3(varyingEye).Normalize()
		n := sampleNormal(uv.X, uv.Y)
		shininess := sampleShininess(uv.X, uv.Y)

		reflected := n.Mul(2 * n.Dot(lightDir)).Sub(lightDir).Normalize()
		specAngle := clamp01(reflected.Dot(eyeDir))
		specular := clamp01(math.Pow(specAngle, shininess*20) * 0.05)

		intensity := clamp01(n.Dot(lightDir)) + 0.2 + specular
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
