package mobileassets

import (
	"image"
	"image/color"
	"math"

	"github.com/setanarut/mobileassets/utils"
	"golang.org/x/image/draw"
)

// ThumbnailSize returns the size src takes after being fitted into box with
// its aspect ratio preserved. The side that reaches the box matches it
// exactly; the other side is floored or ceiled, whichever keeps the ratio
// closer, and never drops below one pixel. Sources that already fit are
// returned unchanged unless upscale is set.
func ThumbnailSize(src, box image.Point, upscale bool) image.Point {
	if src.X <= 0 || src.Y <= 0 || box.X <= 0 || box.Y <= 0 {
		return image.Point{}
	}
	if !upscale && src.X <= box.X && src.Y <= box.Y {
		return src
	}
	aspect := float64(src.X) / float64(src.Y)
	x, y := box.X, box.Y
	if float64(x)/float64(y) >= aspect {
		x = roundAspect(float64(y)*aspect, func(n float64) float64 {
			return math.Abs(aspect - n/float64(y))
		})
	} else {
		y = roundAspect(float64(x)/aspect, func(n float64) float64 {
			if n == 0 {
				return 0
			}
			return math.Abs(aspect - float64(x)/n)
		})
	}
	return image.Pt(x, y)
}

func roundAspect(v float64, dist func(float64) float64) int {
	lo, hi := math.Floor(v), math.Ceil(v)
	n := lo
	if dist(hi) < dist(lo) {
		n = hi
	}
	return max(int(n), 1)
}

// Thumbnail returns a scaled copy of src that fits box. src is never modified.
func Thumbnail(src image.Image, box image.Point, opt Options) *image.NRGBA {
	sb := src.Bounds()
	size := ThumbnailSize(sb.Size(), box, opt.Upscale)
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	if size.X == 0 || size.Y == 0 {
		return dst
	}
	if size == sb.Size() {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
		return dst
	}
	opt.kernel().Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst
}

// CenterOffset is the top-left corner that centers item on canvas.
// Odd remainders are truncated toward zero.
func CenterOffset(canvas, item image.Point) image.Point {
	return image.Pt((canvas.X-item.X)/2, (canvas.Y-item.Y)/2)
}

// LogoBox is the splash logo bounding side for a w×h canvas.
func LogoBox(w, h int, fraction float64) int {
	return int(float64(min(w, h)) * fraction)
}

// NewCanvas allocates a w×h canvas filled with bg. A nil bg leaves it fully
// transparent.
func NewCanvas(w, h int, bg color.Color) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	if bg != nil {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	return canvas
}

// Paste draws src onto dst with its top-left corner at at. Sources with
// per-pixel transparency are alpha-composited so the canvas shows through;
// opaque sources are copied as is.
func Paste(dst draw.Image, src image.Image, at image.Point) {
	op := draw.Src
	if utils.HasAlpha(src) {
		op = draw.Over
	}
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	draw.Draw(dst, r, src, sb.Min, op)
}

// Compositor places one shared source image on canvases of arbitrary size.
type Compositor struct {
	Source image.Image
	opt    Options
	scaled map[image.Point]*image.NRGBA
}

func NewCompositor(src image.Image, opt Options) *Compositor {
	return &Compositor{
		Source: src,
		opt:    opt,
		scaled: make(map[image.Point]*image.NRGBA),
	}
}

// Options returns the options the compositor was built with.
func (c *Compositor) Options() Options {
	return c.opt
}

// Compose fits the source into a box×box square, centers it on a w×h canvas
// filled with bg and returns the canvas.
func (c *Compositor) Compose(w, h, box int, bg color.Color) *image.NRGBA {
	canvas := NewCanvas(w, h, bg)
	logo := c.thumbnail(box)
	Paste(canvas, logo, CenterOffset(canvas.Bounds().Size(), logo.Bounds().Size()))
	return canvas
}

// Icon is a size×size launcher icon on the brand background.
func (c *Compositor) Icon(size int) *image.NRGBA {
	return c.Compose(size, size, size, c.opt.Background)
}

// Foreground is the icon on a transparent canvas, for adaptive icon layers.
func (c *Compositor) Foreground(size int) *image.NRGBA {
	return c.Compose(size, size, size, nil)
}

// Splash centers the logo on a w×h brand canvas, bounded by LogoFraction of
// the shorter side.
func (c *Compositor) Splash(w, h int) *image.NRGBA {
	return c.Compose(w, h, LogoBox(w, h, c.opt.LogoFraction), c.opt.Background)
}

// thumbnail caches scaled copies per box; launcher, round and foreground
// variants of one density share the same scaled source.
func (c *Compositor) thumbnail(box int) *image.NRGBA {
	key := image.Pt(box, box)
	if t, ok := c.scaled[key]; ok {
		return t
	}
	t := Thumbnail(c.Source, key, c.opt)
	c.scaled[key] = t
	return t
}
