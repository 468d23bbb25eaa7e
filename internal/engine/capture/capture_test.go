package capture

import (
	"image/png"
	"os"
	"testing"
)

func TestFromPixelsWritesPNG(t *testing.T) {
	dir := t.TempDir()
	c := New(dir, "garden")

	const w, h = 4, 3
	pixels := make([]byte, w*h*4)
	// GL reads rows bottom-up, so the buffer's last row is the top of the
	// screen. Mark its first pixel; after the flip it must land at the
	// image's top-left.
	top := (h - 1) * w * 4
	pixels[top] = 255
	pixels[top+3] = 255

	name, err := c.FromPixels(pixels, w, h)
	if err != nil {
		t.Fatalf("FromPixels() error: %v", err)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("opening %s: %v", name, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Errorf("image %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), w, h)
	}

	r, _, _, _ := img.At(0, 0).RGBA()
	if r == 0 {
		t.Error("top screen row did not land at the top of the image")
	}
	r, _, _, _ = img.At(0, h-1).RGBA()
	if r != 0 {
		t.Error("bottom of the image should come from the buffer's first row")
	}
}

func TestFromPixelsRejectsShortBuffer(t *testing.T) {
	c := New(t.TempDir(), "garden")
	if _, err := c.FromPixels(make([]byte, 10), 4, 3); err == nil {
		t.Error("expected size mismatch error")
	}
}
