package render

import (
	"math"
	"testing"
)

func TestTriangleKernelNormalizesToOne(t *testing.T) {
	k := triangleKernel(2)
	var sum float32
	for _, v := range k {
		sum += v
	}
	if math.Abs(float64(sum-1)) > 1e-5 {
		t.Errorf("expected kernel taps to sum to 1, got %v", sum)
	}
	// symmetric triangle: center tap is the largest.
	center := len(k) / 2
	for i, v := range k {
		if i != center && v > k[center] {
			t.Errorf("expected the center tap to dominate, k[%d]=%v > k[center]=%v", i, v, k[center])
		}
	}
}

func TestReflectIndexMirrorsAtEdges(t *testing.T) {
	cases := []struct {
		i, n, want int
	}{
		{-1, 5, 1},
		{5, 5, 4},
		{2, 5, 2},
		{0, 5, 0},
	}
	for _, c := range cases {
		if got := reflectIndex(c.i, c.n); got != c.want {
			t.Errorf("reflectIndex(%d, %d): expected %d, got %d", c.i, c.n, c.want, got)
		}
	}
}

func TestBlurLeavesUniformFramebufferUnchanged(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fill := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	for i := range fb.Pixels {
		fb.Pixels[i] = fill
	}

	Blur(fb, 1)

	for row := 0; row < fb.Height; row++ {
		for col := 0; col < fb.Width; col++ {
			got := fb.At(col, row)
			if math.Abs(float64(got.R-fill.R)) > 1e-4 {
				t.Fatalf("blurring a uniform field should be a no-op, got %v at (%d,%d)", got, col, row)
			}
		}
	}
}

func TestBlurZeroRadiusIsNoOp(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(0, 0, RGBA{R: 1})
	fb.Set(1, 1, RGBA{B: 1})

	Blur(fb, 0)

	if fb.At(0, 0) != (RGBA{R: 1}) || fb.At(1, 1) != (RGBA{B: 1}) {
		t.Error("expected radius 0 to leave the framebuffer untouched")
	}
}
