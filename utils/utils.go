package utils

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	DirPerm  = 0755
	FilePerm = 0644
)

// ReadImage decodes a PNG, JPEG, GIF, BMP or WebP file. SVG files are
// rasterized at SVGRasterSize.
func ReadImage(path string) (image.Image, error) {
	if IsSVG(path) {
		return ReadSVG(path, SVGRasterSize)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// MustReadImage is ReadImage for examples and tests; it panics on error.
func MustReadImage(path string) image.Image {
	img, err := ReadImage(path)
	if err != nil {
		panic(err)
	}
	return img
}

// EncodePNG encodes img at the given compression level.
func EncodePNG(img image.Image, level png.CompressionLevel) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveImage writes img as PNG, creating parent directories.
func SaveImage(img image.Image, filename string) error {
	data, err := EncodePNG(img, png.DefaultCompression)
	if err != nil {
		return err
	}
	return AtomicWrite(filename, data)
}

// AtomicWrite writes data to path via a temporary file + rename so readers
// never see a half-written file. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// HasAlpha reports whether img has at least one pixel that is not fully opaque.
func HasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}

// Mode is "RGBA" for images with transparency and "RGB" otherwise.
func Mode(img image.Image) string {
	if HasAlpha(img) {
		return "RGBA"
	}
	return "RGB"
}
