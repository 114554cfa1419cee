package mobileassets

import (
	"image"
	"image/color"
	"testing"
)

var (
	red  = color.NRGBA{R: 220, G: 30, B: 30, A: 255}
	blue = color.NRGBA{R: 20, G: 40, B: 200, A: 255}
)

func solidLogo(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// inkBounds is the bounding box of pixels that differ from bg.
func inkBounds(img *image.NRGBA, bg color.NRGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y) != bg {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestThumbnailSize(t *testing.T) {
	tests := []struct {
		src, box image.Point
		upscale  bool
		want     image.Point
	}{
		{image.Pt(1024, 1024), image.Pt(192, 192), false, image.Pt(192, 192)},
		{image.Pt(1000, 500), image.Pt(192, 192), false, image.Pt(192, 96)},
		{image.Pt(500, 1000), image.Pt(192, 192), false, image.Pt(96, 192)},
		{image.Pt(300, 200), image.Pt(128, 128), false, image.Pt(128, 85)},
		{image.Pt(200, 300), image.Pt(128, 128), false, image.Pt(85, 128)},
		{image.Pt(1000, 3), image.Pt(100, 100), false, image.Pt(100, 1)},
		{image.Pt(40, 40), image.Pt(192, 192), false, image.Pt(40, 40)},
		{image.Pt(40, 40), image.Pt(192, 192), true, image.Pt(192, 192)},
		{image.Pt(40, 20), image.Pt(192, 192), true, image.Pt(192, 96)},
		{image.Pt(300, 100), image.Pt(200, 200), false, image.Pt(200, 67)},
		{image.Pt(0, 10), image.Pt(10, 10), false, image.Point{}},
		{image.Pt(10, 10), image.Pt(0, 10), false, image.Point{}},
	}
	for _, tt := range tests {
		got := ThumbnailSize(tt.src, tt.box, tt.upscale)
		if got != tt.want {
			t.Errorf("ThumbnailSize(%v, %v, %v) = %v, want %v", tt.src, tt.box, tt.upscale, got, tt.want)
		}
	}
}

func TestCenterOffset(t *testing.T) {
	tests := []struct {
		canvas, item, want image.Point
	}{
		{image.Pt(48, 48), image.Pt(48, 48), image.Pt(0, 0)},
		{image.Pt(480, 800), image.Pt(192, 128), image.Pt(144, 336)},
		{image.Pt(167, 167), image.Pt(100, 50), image.Pt(33, 58)},
		{image.Pt(10, 10), image.Pt(3, 3), image.Pt(3, 3)},
	}
	for _, tt := range tests {
		if got := CenterOffset(tt.canvas, tt.item); got != tt.want {
			t.Errorf("CenterOffset(%v, %v) = %v, want %v", tt.canvas, tt.item, got, tt.want)
		}
	}
}

func TestLogoBox(t *testing.T) {
	tests := []struct {
		w, h, want int
	}{
		{480, 800, 192},
		{320, 480, 128},
		{1920, 1280, 512},
		{2732, 2732, 1092},
		{1024, 1024, 409},
	}
	for _, tt := range tests {
		if got := LogoBox(tt.w, tt.h, 0.4); got != tt.want {
			t.Errorf("LogoBox(%d, %d) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestOutputMatchesTableSizes(t *testing.T) {
	comp := NewCompositor(solidLogo(300, 200, red), DefaultOptions())

	for _, d := range AndroidIconSizes {
		for _, img := range []*image.NRGBA{comp.Icon(d.Size), comp.Foreground(d.Size)} {
			if got := img.Bounds().Size(); got != image.Pt(d.Size, d.Size) {
				t.Errorf("%s: size %v, want %dx%d", d.Folder, got, d.Size, d.Size)
			}
		}
	}
	for _, n := range IOSIconSizes {
		if got := comp.Icon(n.Size).Bounds().Size(); got != image.Pt(n.Size, n.Size) {
			t.Errorf("%s: size %v, want %dx%d", n.Filename, got, n.Size, n.Size)
		}
	}
	for _, s := range AndroidSplashSizes {
		if got := comp.Splash(s.Width, s.Height).Bounds().Size(); got != image.Pt(s.Width, s.Height) {
			t.Errorf("%s: size %v, want %dx%d", s.Folder, got, s.Width, s.Height)
		}
	}
}

func TestSplashLogoBoundedAndCentered(t *testing.T) {
	src := solidLogo(1600, 1200, red)
	comp := NewCompositor(src, DefaultOptions())

	screens := append([]Screen(nil), AndroidSplashSizes...)
	screens = append(screens,
		IOSSplashSize,
		Screen{SourceAssetDir, SourceSplashSize, SourceSplashSize},
	)
	for _, s := range screens {
		splash := comp.Splash(s.Width, s.Height)
		ink := inkBounds(splash, BrandTeal)

		limit := 0.4 * float64(min(s.Width, s.Height))
		if float64(max(ink.Dx(), ink.Dy())) > limit {
			t.Errorf("%s: logo %v exceeds %.1f", s.Folder, ink.Size(), limit)
		}
		box := LogoBox(s.Width, s.Height, 0.4)
		want := ThumbnailSize(src.Bounds().Size(), image.Pt(box, box), false)
		if ink.Size() != want {
			t.Errorf("%s: logo size %v, want %v", s.Folder, ink.Size(), want)
		}
		off := image.Pt((s.Width-ink.Dx())/2, (s.Height-ink.Dy())/2)
		if ink.Min != off {
			t.Errorf("%s: logo at %v, want %v", s.Folder, ink.Min, off)
		}
	}
	if got := LogoBox(IOSSplashSize.Width, IOSSplashSize.Height, 0.4); got != 1092 {
		t.Errorf("iOS splash logo box = %d, want 1092", got)
	}
}

func TestSmallSourceIsNotUpscaled(t *testing.T) {
	comp := NewCompositor(solidLogo(10, 10, red), DefaultOptions())
	icon := comp.Icon(48)
	if got := inkBounds(icon, BrandTeal); got != image.Rect(19, 19, 29, 29) {
		t.Errorf("ink = %v, want 10x10 at (19,19)", got)
	}

	opt := DefaultOptions()
	opt.Upscale = true
	icon = NewCompositor(solidLogo(10, 10, red), opt).Icon(48)
	if got := inkBounds(icon, BrandTeal); got != icon.Bounds() {
		t.Errorf("upscaled ink = %v, want full canvas", got)
	}
}

// halfTransparent is transparent on the left half and blue on the right.
func halfTransparent(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := size / 2; x < size; x++ {
			img.SetNRGBA(x, y, blue)
		}
	}
	return img
}

func TestPasteRespectsAlpha(t *testing.T) {
	comp := NewCompositor(halfTransparent(48), DefaultOptions())

	icon := comp.Icon(48)
	if got := icon.NRGBAAt(5, 24); got != BrandTeal {
		t.Errorf("transparent source pixel = %v, want background %v", got, BrandTeal)
	}
	if got := icon.NRGBAAt(40, 24); got != blue {
		t.Errorf("opaque source pixel = %v, want %v", got, blue)
	}

	fg := comp.Foreground(48)
	if got := fg.NRGBAAt(5, 24); got.A != 0 {
		t.Errorf("foreground transparent pixel alpha = %d, want 0", got.A)
	}
	if got := fg.NRGBAAt(40, 24); got != blue {
		t.Errorf("foreground opaque pixel = %v, want %v", got, blue)
	}
}

func TestPasteOpaqueSourceCopies(t *testing.T) {
	dst := NewCanvas(4, 4, BrandTeal)
	Paste(dst, image.NewUniform(blue), image.Pt(0, 0))
	// A Uniform has unbounded bounds; Paste is clipped by dst.
	if got := dst.NRGBAAt(3, 3); got != blue {
		t.Errorf("pixel = %v, want %v", got, blue)
	}

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	Paste(dst, gray, image.Pt(1, 1))
	if got := dst.NRGBAAt(1, 1); got != (color.NRGBA{A: 255}) {
		t.Errorf("gray pixel = %v, want opaque black", got)
	}
}

func TestSourceIsNotMutated(t *testing.T) {
	src := halfTransparent(64)
	before := append([]uint8(nil), src.Pix...)

	comp := NewCompositor(src, DefaultOptions())
	comp.Icon(48)
	comp.Foreground(48)
	comp.Splash(480, 800)

	for i := range before {
		if src.Pix[i] != before[i] {
			t.Fatalf("source pixel byte %d changed", i)
		}
	}
}

func TestNewCanvasTransparent(t *testing.T) {
	c := NewCanvas(3, 2, nil)
	for _, p := range c.Pix {
		if p != 0 {
			t.Fatal("transparent canvas has non-zero bytes")
		}
	}
	c = NewCanvas(3, 2, BrandTeal)
	if got := c.NRGBAAt(2, 1); got != BrandTeal {
		t.Errorf("pixel = %v, want %v", got, BrandTeal)
	}
}

func TestLanczosKernel(t *testing.T) {
	if lanczos3(0) != 1 {
		t.Errorf("lanczos3(0) = %v, want 1", lanczos3(0))
	}
	for _, x := range []float64{1, 2, 3, 4} {
		if v := lanczos3(x); v > 1e-12 || v < -1e-12 {
			t.Errorf("lanczos3(%v) = %v, want 0", x, v)
		}
	}
}
