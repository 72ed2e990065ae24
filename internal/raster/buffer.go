// Package raster holds the off-screen bitmap that mirrors the board. It is
// what gets exported and what color sampling reads from.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"LocalPaint/internal/state"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var ErrInvalidSize = errors.New("raster size must be positive")

// TextFace is the face text stamps are rendered with.
var TextFace = basicfont.Face7x13

type Buffer struct {
	img *image.RGBA
	// mask is scratch space for stroke coverage, sized like img.
	mask *image.Alpha
}

// New allocates a buffer of the given size filled with fill.
func New(width, height int, fill color.Color) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
	return &Buffer{img: img, mask: image.NewAlpha(img.Bounds())}, nil
}

func (b *Buffer) Width() int  { return b.img.Bounds().Dx() }
func (b *Buffer) Height() int { return b.img.Bounds().Dy() }

// Image returns the backing image. Callers must not modify it.
func (b *Buffer) Image() image.Image { return b.img }

// DrawSegment strokes seg with round caps and hard edges: every pixel the
// stroke covers by at least half ends up exactly seg.Color, so sampling
// and erasing never see blended fringes.
func (b *Buffer) DrawSegment(seg state.Segment) {
	area := segmentBounds(seg).Intersect(b.img.Bounds())
	if area.Empty() {
		return
	}

	clear(b.mask.Pix)
	w, h := b.Width(), b.Height()
	scanner := rasterx.NewScannerGV(w, h, b.mask, b.mask.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	dasher.SetColor(color.Opaque)
	dasher.SetStroke(fixed.Int26_6(seg.Width*64), 0, rasterx.RoundCap, rasterx.RoundCap,
		rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	dasher.Start(pixelCenter(seg.From))
	dasher.Line(pixelCenter(seg.To))
	dasher.Stop(false)
	dasher.Draw()

	b.hardenMask(area)
	draw.DrawMask(b.img, area, image.NewUniform(seg.Color), image.Point{}, b.mask, area.Min, draw.Over)
}

// pixelCenter maps a pointer position onto the center of its pixel.
func pixelCenter(p state.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X)+0.5, float64(p.Y)+0.5)
}

// segmentBounds is the pixel area a segment's stroke can touch.
func segmentBounds(seg state.Segment) image.Rectangle {
	pad := seg.Width/2 + 2
	r := image.Rect(int(seg.From.X), int(seg.From.Y), int(seg.To.X), int(seg.To.Y))
	return image.Rect(r.Min.X-pad, r.Min.Y-pad, r.Max.X+pad+1, r.Max.Y+pad+1)
}

// hardenMask turns coverage into all-or-nothing within area.
func (b *Buffer) hardenMask(area image.Rectangle) {
	for y := area.Min.Y; y < area.Max.Y; y++ {
		row := b.mask.Pix[b.mask.PixOffset(area.Min.X, y):b.mask.PixOffset(area.Max.X, y)]
		for i, a := range row {
			if a >= 0x80 {
				row[i] = 0xff
			} else {
				row[i] = 0
			}
		}
	}
}

// DrawText renders the stamp with its top-left corner at the stamp location.
func (b *Buffer) DrawText(t state.TextStamp) {
	d := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(t.Color),
		Face: TextFace,
		Dot:  fixed.P(int(t.At.X), int(t.At.Y)+TextFace.Ascent),
	}
	d.DrawString(t.Text)
}

// At returns the pixel under p. ok is false outside the buffer.
func (b *Buffer) At(p state.Point) (c color.NRGBA, ok bool) {
	pt := image.Pt(int(p.X), int(p.Y))
	if p.X < 0 || p.Y < 0 || !pt.In(b.img.Bounds()) {
		return c, false
	}
	return state.ToNRGBA(b.img.RGBAAt(pt.X, pt.Y)), true
}

// EncodePNG writes the buffer as PNG. The buffer is always opaque, so the
// encoder emits RGB without alpha.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
