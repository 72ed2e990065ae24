// Package export writes the raster buffer to disk.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
)

const (
	PNGExt = ".png"
	PDFExt = ".pdf"
)

// EnsureExtension appends ext to path unless path already ends with it,
// ignoring case.
func EnsureExtension(path, ext string) string {
	if strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext)) {
		return path
	}
	return path + ext
}

// PNG writes img to path.
func PNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := WritePNG(f, img); err != nil {
		return err
	}
	log.Printf("[EXPORT] Wrote %dx%d canvas to %s", img.Bounds().Dx(), img.Bounds().Dy(), path)
	return nil
}

func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
