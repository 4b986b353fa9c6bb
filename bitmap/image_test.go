package bitmap

import (
	"image"
	"testing"
)

func TestAsImage_MatchesGetPixel(t *testing.T) {
	b := New(2, 2)
	b.SetPixel(0, 0, argb(255, 0, 0, 255))
	b.SetPixel(1, 1, argb(0, 128, 255, 64))

	img := b.AsImage()
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("Bounds() = %v, want 0,0,2,2", img.Bounds())
	}
	r, g, bl, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || bl>>8 != 0 || a>>8 != 255 {
		t.Fatalf("At(0,0) = %d,%d,%d,%d, want 255,0,0,255", r>>8, g>>8, bl>>8, a>>8)
	}
}

func TestToNRGBA_MatchesBitmap(t *testing.T) {
	b := New(2, 1)
	b.SetPixel(0, 0, argb(10, 20, 30, 200))
	b.SetPixel(1, 0, argb(40, 50, 60, 100))

	img := b.ToNRGBA()
	i := img.PixOffset(1, 0)
	if img.Pix[i+0] != 40 || img.Pix[i+1] != 50 || img.Pix[i+2] != 60 || img.Pix[i+3] != 100 {
		t.Fatalf("ToNRGBA pixel 1 = %v, want 40,50,60,100", img.Pix[i:i+4])
	}
}

func TestFromImage_RoundTripsThroughNRGBA(t *testing.T) {
	b := New(2, 2)
	b.SetPixel(0, 0, argb(1, 2, 3, 255))
	b.SetPixel(1, 1, argb(250, 251, 252, 255))

	back := FromImage(b.ToNRGBA())
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if back.GetPixel(x, y) != b.GetPixel(x, y) {
				t.Fatalf("round trip pixel (%d,%d) = %#x, want %#x", x, y, back.GetPixel(x, y), b.GetPixel(x, y))
			}
		}
	}
}
