// Command triangle reproduces the reference rasterizer's first sample
// scene: a single triangle with per-vertex colors
// interpolated across its face, written out as output.bmp.
package main

import (
	"log/slog"
	"os"

	"github.com/gogpu/swr"
)

const varyingColor = 0

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	swr.SetLogger(logger)

	dev, err := swr.NewDevice(800, 600)
	if err != nil {
		logger.Error("create device", "error", err)
		os.Exit(1)
	}

	positions := [3]swr.Vec4{
		swr.V4(0.0, 0.7, 0.90, 1),
		swr.V4(-0.6, -0.2, 0.01, 1),
		swr.V4(0.6, -0.2, 0.01, 1),
	}
	colors := [3]swr.Vec4{
		swr.V4(1, 0, 0, 1),
		swr.V4(0, 1, 0, 1),
		swr.V4(0, 0, 1, 1),
	}

	dev.SetVertexShader(func(index int, out *swr.Varying) swr.Vec4 {
		out.SetVec4(varyingColor, colors[index])
		return positions[index]
	})
	dev.SetPixelShader(func(in *swr.Varying) swr.Color {
		return swr.ColorFromVec4(in.Vec4(varyingColor))
	})

	dev.DrawPrimitive()

	if err := dev.Save("output.bmp"); err != nil {
		logger.Error("save output", "error", err)
		os.Exit(1)
	}
}
