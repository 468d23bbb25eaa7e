// Package capture saves framebuffer screenshots as timestamped PNGs.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capture writes screenshots into a directory with a common prefix.
type Capture struct {
	outputDir string
	prefix    string
}

// New creates a screenshot writer. An empty outputDir means the current
// directory.
func New(outputDir, prefix string) *Capture {
	return &Capture{outputDir: outputDir, prefix: prefix}
}

// FromPixels saves raw RGBA framebuffer data, flipping it vertically
// since OpenGL reads rows bottom-up. Returns the written filename.
func (c *Capture) FromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	filename := c.filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

func (c *Capture) filename() string {
	name := fmt.Sprintf("%s_%s.png", c.prefix, time.Now().Format("2006-01-02_15-04-05"))
	if c.outputDir != "" {
		name = filepath.Join(c.outputDir, name)
	}
	return name
}
