package glowfx

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"fireworks", "fireworks"},
		{"my show", "my_show"},
		{"a/b\\c", "a_b_c"},
		{"v1.2-final", "v1.2-final"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSnapshotPath(t *testing.T) {
	got := SnapshotPath("out", "night show", 42)
	want := filepath.Join("out", "night_show_00042.png")
	if got != want {
		t.Errorf("SnapshotPath = %q, want %q", got, want)
	}
}

func TestFlattenOverBackground(t *testing.T) {
	r := NewRaster(2, 1)
	r.FillRect(0, 0, 1, 1, Color{1, 0, 0, 1})

	out := Flatten(r.Image(), Color{0, 0, 1, 1})
	if got := out.NRGBAAt(0, 0); got.R != 255 || got.B != 0 || got.A != 255 {
		t.Errorf("lit pixel = %+v, want opaque red", got)
	}
	if got := out.NRGBAAt(1, 0); got.R != 0 || got.B != 255 || got.A != 255 {
		t.Errorf("empty pixel = %+v, want the background", got)
	}
}

func TestWritePNG(t *testing.T) {
	r := NewRaster(6, 4)
	r.FillRect(0, 0, 6, 4, Color{0, 1, 0, 1})
	path := filepath.Join(t.TempDir(), "nested", "snap.png")

	if err := WritePNG(path, Flatten(r.Image(), Color{A: 1})); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Errorf("bounds = %v, want 6x4", b)
	}
}
