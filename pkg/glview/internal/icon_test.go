package internal

import (
	"strings"
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 10 10">
<rect x="0" y="0" width="10" height="10" fill="#ff0000"/>
</svg>`

func TestRasterizeSVG(t *testing.T) {
	rgba, err := RasterizeSVG(strings.NewReader(testSVG), 32, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rgba.Bounds().Dx() != 32 || rgba.Bounds().Dy() != 32 {
		t.Fatalf("unexpected bounds %v", rgba.Bounds())
	}
	c := rgba.RGBAAt(16, 16)
	if c.R < 200 || c.G > 50 || c.B > 50 || c.A < 200 {
		t.Fatalf("expected opaque red at the center, got %+v", c)
	}
}

func TestRasterizeSVGErrors(t *testing.T) {
	if _, err := RasterizeSVG(strings.NewReader(testSVG), 0, 16); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if _, err := RasterizeSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><rect x="1"`), 16, 16); err == nil {
		t.Fatalf("expected error for invalid svg")
	}
	if _, err := RasterizeSVGFile("does-not-exist.svg", 16, 16); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestCopyRows(t *testing.T) {
	src := []byte{
		1, 2, 3, 4, 9, 9,
		5, 6, 7, 8, 9, 9,
	}
	dst := make([]byte, 2*8)
	copyRows(dst, 8, src, 6, 4, 2)

	want := []byte{1, 2, 3, 4, 0, 0, 0, 0, 5, 6, 7, 8, 0, 0, 0, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestIconCacheEvictsLeastRecentlyUsed(t *testing.T) {
	var freed []*sdl.Surface
	c := NewIconCacheWithSize(2, func(s *sdl.Surface) { freed = append(freed, s) })

	a, b, d := &sdl.Surface{}, &sdl.Surface{}, &sdl.Surface{}
	c.Set("a", a)
	c.Set("b", b)
	if c.Get("a") != a {
		t.Fatalf("expected a to be cached")
	}
	c.Set("d", d)

	if c.Get("b") != nil {
		t.Fatalf("b should have been evicted")
	}
	if len(freed) != 1 || freed[0] != b {
		t.Fatalf("expected b to be freed, got %v", freed)
	}
	if c.Get("a") != a || c.Get("d") != d || c.Len() != 2 {
		t.Fatalf("unexpected cache contents")
	}

	c.Destroy()
	if len(freed) != 3 || c.Len() != 0 {
		t.Fatalf("destroy should free everything, freed %d", len(freed))
	}
}

func TestIconCacheReplaceFreesOld(t *testing.T) {
	var freed int
	c := NewIconCacheWithSize(2, func(*sdl.Surface) { freed++ })

	first, second := &sdl.Surface{}, &sdl.Surface{}
	c.Set("icon", first)
	c.Set("icon", first)
	if freed != 0 {
		t.Fatalf("re-setting the same surface must not free it")
	}
	c.Set("icon", second)
	if freed != 1 || c.Get("icon") != second || c.Len() != 1 {
		t.Fatalf("replace should free the old surface")
	}
}

func TestSetIconWithoutWindow(t *testing.T) {
	v := newGLView(ViewOptions{})
	if err := v.SetIcon("icon.png"); err != ErrNotInitialized {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}
