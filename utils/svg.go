package utils

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// SVGRasterSize is the longer side, in pixels, of a rasterized SVG source.
// It matches the largest icon the tables produce.
const SVGRasterSize = 1024

// IsSVG reports whether path names an SVG file.
func IsSVG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

// ReadSVG rasterizes an SVG file so that its longer side is size pixels,
// keeping the view box aspect ratio.
func ReadSVG(path string, size int) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()
	img, err := RasterizeSVG(file, size)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// RasterizeSVG draws the SVG read from r onto a transparent canvas.
func RasterizeSVG(r io.Reader, size int) (*image.NRGBA, error) {
	if size <= 0 {
		size = SVGRasterSize
	}
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, err
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = float64(size), float64(size)
	}
	scale := float64(size) / max(w, h)
	outW := max(int(w*scale+0.5), 1)
	outH := max(int(h*scale+0.5), 1)

	icon.SetTarget(0, 0, float64(outW), float64(outH))
	img := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	scanner := rasterx.NewScannerGV(outW, outH, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(outW, outH, scanner), 1.0)
	return img, nil
}
