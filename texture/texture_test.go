package texture

import "testing"

func TestSampleWrapsRepeatedUV(t *testing.T) {
	m := &Map{
		Width:  2,
		Height: 2,
		Pixels: []Color{
			{R: 1}, {R: 2}, // row 0: (0,0) (1,0)
			{R: 3}, {R: 4}, // row 1: (0,1) (1,1)
		},
	}
	tm := TextureMap{Used: true, RepeatU: 1, RepeatV: 1}

	// u=0,v=0: Sample flips v, so the row coordinate is (1-0)*2 = 2, which
	// wraps back to row 0.
	got := Sample(0, 0, m, tm)
	want := m.Pixels[0*m.Width+0]
	if got != want {
		t.Errorf("Sample(0,0): expected %v, got %v", want, got)
	}
}

func TestSampleAppliesRepeatCounts(t *testing.T) {
	m := &Map{
		Width:  4,
		Height: 1,
		Pixels: []Color{{R: 0}, {R: 1}, {R: 2}, {R: 3}},
	}
	tm := TextureMap{Used: true, RepeatU: 2, RepeatV: 1}

	// u=0.5 with repeatU=2 lands at texel-space coordinate 4, which wraps
	// back to column 0.
	got := Sample(0.5, 0, m, tm)
	want := m.Pixels[0]
	if got != want {
		t.Errorf("expected repeat to wrap back to column 0, got %v want %v", got, want)
	}
}

func TestWrapIndexHandlesNegativeInput(t *testing.T) {
	if got := wrapIndex(-0.5, 4); got != 3 {
		t.Errorf("wrapIndex(-0.5, 4): expected 3, got %d", got)
	}
}

func TestCacheLoadIsInsertOnce(t *testing.T) {
	c := NewCache()
	seeded := &Map{Width: 1, Height: 1, Pixels: []Color{{R: 1}}}
	c.maps["seeded.png"] = seeded

	got, err := c.Load("seeded.png")
	if err != nil {
		t.Fatalf("unexpected error loading an already-cached entry: %v", err)
	}
	if got != seeded {
		t.Error("expected Load to return the exact cached pointer, not a copy")
	}
}

func TestCacheGetReturnsNilForUnloaded(t *testing.T) {
	c := NewCache()
	if got := c.Get("never-loaded.png"); got != nil {
		t.Errorf("expected nil for a filename never inserted, got %v", got)
	}
}

func TestCacheLoadMissingFileReturnsError(t *testing.T) {
	c := NewCache()
	if _, err := c.Load("this-file-does-not-exist-anywhere.png"); err == nil {
		t.Error("expected an error loading a nonexistent file")
	}
}
