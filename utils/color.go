package utils

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return ToNRGBA(c), nil
}

func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Luminance is the relative luminance (0 black, 1 white).
func Luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio is the WCAG contrast ratio between two colors, 1 to 21.
func ContrastRatio(a, b color.Color) float64 {
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	la, lb := Luminance(ca), Luminance(cb)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ContrastingTextColor returns white or black, whichever reads better on bg.
func ContrastingTextColor(bg color.Color) color.NRGBA {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{A: 255}
	if bg == nil || ContrastRatio(white, bg) >= ContrastRatio(black, bg) {
		return white
	}
	return black
}

// colorful.MakeColor rejects fully transparent colors.
func opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 255
	return n
}

// LuminanceStats returns the alpha-weighted mean and standard deviation of
// pixel luminance. Fully transparent pixels do not contribute.
func LuminanceStats(img image.Image) (mean, std float64) {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return 0, 0
	}
	lum := make([]float64, 0, n)
	weights := make([]float64, 0, n)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			col, _ := colorful.MakeColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
			lum = append(lum, Luminance(col))
			weights = append(weights, float64(c.A)/255)
		}
	}
	if len(lum) == 0 {
		return 0, 0
	}
	// The weighted variance divides by sum(w)-1.
	if floats.Sum(weights) <= 1 {
		return stat.Mean(lum, weights), 0
	}
	return stat.MeanStdDev(lum, weights)
}

// HexString formats c as "#rrggbb", ignoring alpha.
func HexString(c color.Color) string {
	col, _ := colorful.MakeColor(opaque(c))
	return col.Hex()
}
