package render

// Framebuffer is a linear W*H array of RGBA cells, row-major, written in
// place by the scheduler and optionally smoothed by Blur afterward.
// Caller-owned; one worker writes each cell.
type Framebuffer struct {
	Width, Height int
	Pixels        []RGBA
}

func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{Width: w, Height: h, Pixels: make([]RGBA, w*h)}
}

func (f *Framebuffer) At(col, row int) RGBA {
	return f.Pixels[row*f.Width+col]
}

func (f *Framebuffer) Set(col, row int, c RGBA) {
	f.Pixels[row*f.Width+col] = c
}

// triangleKernel returns the normalized 1D triangle kernel of the given
// radius: k(x) = 1 - |x/r|, normalized so the taps sum to 1. The reference
// filter hardcodes radius 1; this keeps radius a parameter instead.
func triangleKernel(radius int) []float32 {
	n := 2*radius + 1
	k := make([]float32, n)
	var sum float32
	for i := 0; i < n; i++ {
		x := float32(i-radius) / float32(radius)
		v := 1 - absf(x)
		if v < 0 {
			v = 0
		}
		k[i] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// Blur applies the separable triangle-kernel post-process: a horizontal
// pass into a scratch buffer, then a vertical pass back into fb. The
// kernel is indexed end-to-start during convolution so an asymmetric
// kernel would be applied correctly, though the triangle kernel used here
// is symmetric. Out-of-range taps reflect across the image edge via
// reflectIndex.
func Blur(fb *Framebuffer, radius int) {
	if radius <= 0 {
		return
	}
	kernel := triangleKernel(radius)
	n := len(kernel)

	scratch := make([]RGBA, len(fb.Pixels))
	for row := 0; row < fb.Height; row++ {
		for col := 0; col < fb.Width; col++ {
			var acc RGBA
			for k := 0; k < n; k++ {
				offset := k - radius
				srcCol := reflectIndex(col+offset, fb.Width)
				acc = acc.Add(fb.At(srcCol, row).Mul(kernel[n-1-k]))
			}
			scratch[row*fb.Width+col] = acc
		}
	}

	for col := 0; col < fb.Width; col++ {
		for row := 0; row < fb.Height; row++ {
			var acc RGBA
			for k := 0; k < n; k++ {
				offset := k - radius
				srcRow := reflectIndex(row+offset, fb.Height)
				acc = acc.Add(scratch[srcRow*fb.Width+col].Mul(kernel[n-1-k]))
			}
			fb.Set(col, row, acc)
		}
	}
}
