package mobileassets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/setanarut/mobileassets/utils"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ParseFont parses TTF or OTF data. Empty data yields Go Bold.
func ParseFont(data []byte) (*opentype.Font, error) {
	if len(data) == 0 {
		data = gobold.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return f, nil
}

// TextSplash renders opt.Text centered on a w×h canvas filled with bg.
func TextSplash(w, h int, bg color.Color, opt TextOptions) (*image.NRGBA, error) {
	otf, err := ParseFont(opt.Font)
	if err != nil {
		return nil, err
	}
	return drawText(w, h, bg, otf, opt)
}

func drawText(w, h int, bg color.Color, otf *opentype.Font, opt TextOptions) (*image.NRGBA, error) {
	canvas := NewCanvas(w, h, bg)
	if opt.Text == "" {
		return canvas, nil
	}

	size := opt.Size
	if size <= 0 {
		size = FontSizeFor(w, h)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	fg := opt.Color
	if fg == nil {
		fg = utils.ContrastingTextColor(bg)
	}

	// Center the ink box, not the advance box, so the glyphs sit visually
	// in the middle of the canvas.
	bounds, _ := font.BoundString(face, opt.Text)
	ink := image.Pt(
		(bounds.Max.X - bounds.Min.X).Ceil(),
		(bounds.Max.Y - bounds.Min.Y).Ceil(),
	)
	at := CenterOffset(image.Pt(w, h), ink)

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(at.X-bounds.Min.X.Floor(), at.Y-bounds.Min.Y.Floor()),
	}
	d.DrawString(opt.Text)
	return canvas, nil
}
