package export

import (
	"bytes"
	"fmt"
	"image"
	"log"

	"github.com/jung-kurt/gofpdf"
)

const canvasImage = "canvas"

// PDF writes img to path as a single page the size of the image, one
// point per pixel. The page is always portrait: gofpdf swaps a custom size
// for landscape.
func PDF(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		return err
	}

	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(canvasImage, opts, &buf)
	p.ImageOptions(canvasImage, 0, 0, w, h, false, opts, 0, "")

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	log.Printf("[EXPORT] Wrote %dx%d canvas to %s", b.Dx(), b.Dy(), path)
	return nil
}
