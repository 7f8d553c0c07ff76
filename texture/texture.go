// Package texture loads image files into an immutable, process-wide cache
// and samples them by UV coordinate for the shading pipeline. It decodes
// PNG, JPEG, BMP and TIFF, and implements the repeat/UV sampling contract
// the renderer needs.
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Color is a floating-point RGBA color, [0,1] per channel. It mirrors
// render.RGBA's layout exactly so the two convert with a plain type
// conversion; texture cannot import render without creating an import
// cycle (render depends on texture for Material).
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// Map is a decoded image: width/height plus row-major RGBA pixels.
type Map struct {
	Width, Height int
	Pixels        []Color
}

// TextureMap is a material's reference to a Map asset: the filename to
// load, per-axis repeat counts, and whether the material actually uses a
// texture at all.
type TextureMap struct {
	Filename string  `json:"filename"`
	RepeatU  float32 `json:"repeatU"`
	RepeatV  float32 `json:"repeatV"`
	Used     bool    `json:"used"`
}

// Cache is a process-wide, insert-once, read-many store of loaded Maps
// keyed by filename.
type Cache struct {
	mu    sync.RWMutex
	maps  map[string]*Map
}

func NewCache() *Cache {
	return &Cache{maps: make(map[string]*Map)}
}

// Load returns the cached Map for path, decoding and inserting it if this
// is the first request for that filename. Subsequent calls never mutate
// the returned Map.
func (c *Cache) Load(path string) (*Map, error) {
	c.mu.RLock()
	m, ok := c.maps[path]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	m, err := decodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("load texture %q: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.maps[path]; ok {
		return existing, nil
	}
	c.maps[path] = m
	return m, nil
}

// Get returns the already-loaded Map for path, or nil if it was never
// inserted. Used on the hot shading path, which must not trigger I/O.
func (c *Cache) Get(path string) *Map {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maps[path]
}

func decodeFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = Color{
				R: float32(r) / 65535,
				G: float32(g) / 65535,
				B: float32(b) / 65535,
				A: float32(a) / 65535,
			}
		}
	}
	return &Map{Width: w, Height: h, Pixels: pixels}, nil
}

// Sample implements the texture lookup: scale uv by the material's repeat
// counts, wrap into the image, flip v, and return the texel color.
func Sample(u, v float32, m *Map, tm TextureMap) Color {
	col := wrapIndex(u*float32(m.Width)*tm.RepeatU, m.Width)
	row := wrapIndex((1-v)*float32(m.Height)*tm.RepeatV, m.Height)
	return m.Pixels[row*m.Width+col]
}

func wrapIndex(f float32, n int) int {
	i := int(floorf(f))
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func floorf(f float32) float32 {
	i := int(f)
	if f < 0 && float32(i) != f {
		i--
	}
	return float32(i)
}
