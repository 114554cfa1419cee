package mobileassets

import (
	"image/color"
	"image/png"
	"math"

	"github.com/setanarut/mobileassets/utils"
	"golang.org/x/image/draw"
)

// BrandTeal is the default canvas color (#00A690).
var BrandTeal = color.NRGBA{R: 0, G: 166, B: 144, A: 255}

// Lanczos3 is a three-lobed Lanczos resampling kernel.
var Lanczos3 = &draw.Kernel{Support: 3, At: lanczos3}

func lanczos3(t float64) float64 {
	if t == 0 {
		return 1
	}
	if t >= 3 {
		return 0
	}
	pt := math.Pi * t
	return 3 * math.Sin(pt) * math.Sin(pt/3) / (pt * pt)
}

type Options struct {
	// Canvas fill behind icons and splash logos.
	// Foreground icon variants ignore it and start fully transparent.
	Background color.NRGBA
	// Replace Background with the dominant color of the source once it is loaded.
	AutoBackground bool
	// Palette extraction used by AutoBackground.
	PaletteMethod utils.PaletteMethod
	// Largest splash logo side as a fraction of min(width, height).
	// 0.4 keeps a 30% margin on each side of the shorter axis.
	LogoFraction float64
	// Let sources smaller than the target box grow to fill it.
	// Off: small sources keep their native size and are only centered.
	Upscale bool
	// Resampling kernel. Nil means Lanczos3.
	Kernel *draw.Kernel
	// PNG compression of every written file.
	Compression png.CompressionLevel
}

func DefaultOptions() Options {
	return Options{
		Background:    BrandTeal,
		PaletteMethod: utils.PaletteMethodDominantColor,
		LogoFraction:  0.4,
		Kernel:        Lanczos3,
		Compression:   png.DefaultCompression,
	}
}

func (o Options) kernel() *draw.Kernel {
	if o.Kernel == nil {
		return Lanczos3
	}
	return o.Kernel
}

// TextOptions controls text splash rendering.
type TextOptions struct {
	// Rendered string, usually the product name in capitals.
	Text string
	// Glyph color. Nil picks black or white, whichever contrasts better
	// with the background.
	Color color.Color
	// Font file contents (TTF or OTF). Empty means Go Bold.
	Font []byte
	// Font size in pixels. Zero derives it from the canvas with FontSizeFor.
	Size float64
}

func DefaultTextOptions() TextOptions {
	return TextOptions{
		Text:  "KAPKURTAR",
		Color: color.White,
	}
}

// FontSizeFor is an eighth of the shorter canvas side, never below 20px.
func FontSizeFor(w, h int) float64 {
	return float64(max(min(w, h)/8, 20))
}
