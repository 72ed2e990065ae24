package state

import (
	"errors"
	"fmt"
	"image/color"
)

type Point struct{ X, Y float32 }

// Segment is one rounded-cap line of a stroke, drawn from the previous
// pointer position to the current one.
type Segment struct {
	StrokeID string
	From, To Point
	Color    color.NRGBA
	Width    int
}

// TextStamp is pending text placed at a click location.
type TextStamp struct {
	At    Point
	Text  string
	Color color.NRGBA
}

var (
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.NRGBA{A: 255}
)

// BrushSizes are the widths offered by the brush selector.
var BrushSizes = []int{1, 2, 5, 10, 15, 20, 25}

var ErrInvalidBrushWidth = errors.New("brush width not in the offered set")

// Config holds the startup defaults of a canvas.
type Config struct {
	Width, Height int
	PenColor      color.NRGBA
	BrushWidth    int
	// Blank is the fill of a freshly allocated buffer and the eraser color.
	Blank color.NRGBA
}

func DefaultConfig() Config {
	return Config{
		Width:      600,
		Height:     400,
		PenColor:   Black,
		BrushWidth: 1,
		Blank:      White,
	}
}

// ToNRGBA converts any color to an opaque NRGBA.
func ToNRGBA(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 255
	return n
}

// HexColor formats the RGB channels of c as #rrggbb.
func HexColor(c color.Color) string {
	n := ToNRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func ParseHexColor(s string) (color.NRGBA, error) {
	var c color.NRGBA
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid hex color %q", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	c.A = 255
	return c, nil
}
