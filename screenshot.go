package glowfx

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Flatten composites a premultiplied image over an opaque background and
// returns the straight-alpha result, ready for PNG encoding.
func Flatten(src *image.RGBA, bg Color) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	br, bgc, bb, _ := Color{R: bg.R, G: bg.G, B: bg.B, A: 1}.premultiplied()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		so := src.PixOffset(bounds.Min.X, y)
		do := dst.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := float64(src.Pix[so+3]) / 255
			k := 1 - a
			dst.Pix[do+0] = uint8(clamp01(float64(src.Pix[so+0])/255+br*k) * 255)
			dst.Pix[do+1] = uint8(clamp01(float64(src.Pix[so+1])/255+bgc*k) * 255)
			dst.Pix[do+2] = uint8(clamp01(float64(src.Pix[so+2])/255+bb*k) * 255)
			dst.Pix[do+3] = 255
			so += 4
			do += 4
		}
	}
	return dst
}

// SnapshotPath returns dir/<label>_<frame>.png with unsafe label characters
// replaced.
func SnapshotPath(dir, label string, frame int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%05d.png", sanitizeLabel(label), frame))
}

// WritePNG encodes an image to a PNG file at the given path, creating the
// parent directory if needed.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', maps every other rune
// to '_', and names blank labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			return r
		}
		return '_'
	}, label)
}
