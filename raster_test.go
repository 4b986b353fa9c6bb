package swr

import "testing"

func TestEdgeFunction_SignFlipsAcrossTheEdge(t *testing.T) {
	a := [2]int{0, 0}
	b := [2]int{10, 0}
	above := edgeFunction(5, -1, a, b)
	below := edgeFunction(5, 1, a, b)
	if (above > 0) == (below > 0) {
		t.Fatalf("edgeFunction should have opposite signs on either side of the edge, got %d and %d", above, below)
	}
	if edgeFunction(5, 0, a, b) != 0 {
		t.Fatal("edgeFunction on the edge itself should be 0")
	}
}

func TestIsTopLeft_HorizontalRightward(t *testing.T) {
	if !isTopLeft([2]int{0, 0}, [2]int{5, 0}) {
		t.Fatal("rightward horizontal edge should be top")
	}
	if isTopLeft([2]int{5, 0}, [2]int{0, 0}) {
		t.Fatal("leftward horizontal edge should not be top")
	}
}

func TestIsTopLeft_Vertical(t *testing.T) {
	// edgeFunction is >= 0 to the right of an upward edge and to the
	// left of a downward one, so only the upward edge is a left edge.
	if !isTopLeft([2]int{0, 5}, [2]int{0, 0}) {
		t.Fatal("upward edge should be left")
	}
	if isTopLeft([2]int{0, 0}, [2]int{0, 5}) {
		t.Fatal("downward edge should not be left")
	}
}

func TestEdgeBias(t *testing.T) {
	if edgeBias(true) != 0 {
		t.Fatal("top-left edge bias should be 0")
	}
	if edgeBias(false) != 1 {
		t.Fatal("non top-left edge bias should be 1")
	}
}

func TestRasterizeTriangle_SharedEdgeHasNoGapOrOverlap(t *testing.T) {
	// Three triangles on a 10x10 frame: the first (left half) shares the
	// edge (5,0)-(5,10) with the second, and the second and third tile
	// the right half along the diagonal (5,0)-(10,10). No pixel may be
	// covered twice, and every right-half pixel exactly once.
	dev, _ := NewDevice(10, 10, WithClearColors(Black, White))

	coverage := make(map[[2]int]int)
	dev.SetPixelShader(func(in *Varying) Color { return White })

	draw := func(positions [3]Vec4) {
		var verts [3]vertex
		for k := 0; k < 3; k++ {
			if !dev.project(&verts[k], positions[k]) {
				t.Fatal("unexpected rejection")
			}
		}
		v0, v1, v2, ok := orient(&verts[0], &verts[1], &verts[2])
		if !ok {
			t.Fatal("unexpected degenerate triangle")
		}
		dev.rasterizeTriangle(v0, v1, v2)
		minX, minY, maxX, maxY := boundsClamped(v0, v1, v2, dev.width, dev.height)
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				if dev.frame.at(x, y) == White.Pack() {
					coverage[[2]int{x, y}]++
				}
			}
		}
		dev.frame.fill(Black.Pack())
		dev.depth.clear()
	}

	// NDC square [-1,1]^2 split along x==0 into two triangles.
	draw([3]Vec4{V4(-1, -1, 0.5, 1), V4(0, -1, 0.5, 1), V4(0, 1, 0.5, 1)})
	draw([3]Vec4{V4(0, -1, 0.5, 1), V4(1, -1, 0.5, 1), V4(0, 1, 0.5, 1)})
	draw([3]Vec4{V4(0, 1, 0.5, 1), V4(1, -1, 0.5, 1), V4(1, 1, 0.5, 1)})

	for pt, n := range coverage {
		if n > 1 {
			t.Fatalf("pixel %v covered %d times, want at most 1", pt, n)
		}
	}
	for y := 0; y < 10; y++ {
		for x := 5; x < 10; x++ {
			if n := coverage[[2]int{x, y}]; n != 1 {
				t.Fatalf("right-half pixel (%d,%d) covered %d times, want exactly 1", x, y, n)
			}
		}
	}
}

func TestRasterizeTriangle_DepthTestRejectsFarther(t *testing.T) {
	dev, _ := NewDevice(10, 10, WithClearColors(Black, White))
	// Same screen footprint (NDC (-1,-1),(1,-1),(0,1) after divide), but
	// near has w=1 (rhw=1) and far has w=2 (rhw=0.5): a larger rhw means
	// nearer, so near must win the depth test regardless of draw order.
	near := [3]Vec4{V4(-1, -1, 0.5, 1), V4(1, -1, 0.5, 1), V4(0, 1, 0.5, 1)}
	far := [3]Vec4{V4(-2, -2, 1.0, 2), V4(2, -2, 1.0, 2), V4(0, 2, 1.0, 2)}

	dev.SetPixelShader(func(in *Varying) Color { return White })
	drawTri := func(p [3]Vec4, color Color) {
		dev.SetPixelShader(func(in *Varying) Color { return color })
		var verts [3]vertex
		for k := 0; k < 3; k++ {
			dev.project(&verts[k], p[k])
		}
		v0, v1, v2, _ := orient(&verts[0], &verts[1], &verts[2])
		dev.rasterizeTriangle(v0, v1, v2)
	}

	drawTri(near, Red)
	drawTri(far, Blue)

	if got := dev.frame.at(5, 5); got != Red.Pack() {
		t.Fatalf("nearer triangle drawn first should survive depth test, got %#x", got)
	}
}

func TestDrawLine_ClampsOutOfBounds(t *testing.T) {
	dev, _ := NewDevice(4, 4)
	dev.drawLine([2]int{-2, -2}, [2]int{10, 10}, White.Pack())
	if got := dev.frame.at(0, 0); got != White.Pack() {
		t.Fatalf("in-bounds portion of line should still be drawn, got %#x", got)
	}
}
