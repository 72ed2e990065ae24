package paint

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"LocalPaint/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	width, height int
	background    color.Color
	segments      []state.Segment
	texts         []state.TextStamp
	clears        int
}

func (f *fakeSurface) DrawSegment(seg state.Segment) { f.segments = append(f.segments, seg) }
func (f *fakeSurface) DrawText(t state.TextStamp)    { f.texts = append(f.texts, t) }
func (f *fakeSurface) Clear() {
	f.segments, f.texts = nil, nil
	f.clears++
}
func (f *fakeSurface) Reset(w, h int, bg color.Color) {
	f.segments, f.texts = nil, nil
	f.width, f.height, f.background = w, h, bg
}
func (f *fakeSurface) SetBackground(c color.Color) { f.background = c }

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func newSession(t *testing.T) (*Session, *fakeSurface) {
	t.Helper()
	surface := &fakeSurface{}
	s, err := NewSession(state.DefaultConfig(), surface)
	require.NoError(t, err)
	return s, surface
}

func pt(x, y float32) state.Point { return state.Point{X: x, Y: y} }

func drag(s *Session, points ...state.Point) {
	for _, p := range points {
		s.PointerMove(p)
	}
	s.PointerUp()
}

func exported(t *testing.T, s *Session) image.Image {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	return img
}

func pixel(img image.Image, x, y int) color.NRGBA {
	return state.ToNRGBA(img.At(x, y))
}

func allWhite(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if pixel(img, x, y) != state.White {
				return false
			}
		}
	}
	return true
}

func TestNewSessionSizesBothSurfaces(t *testing.T) {
	s, surface := newSession(t)
	assert.Equal(t, 600, surface.width)
	assert.Equal(t, 400, surface.height)
	assert.Equal(t, 600, s.Buffer.Width())
	assert.Equal(t, 400, s.Buffer.Height())
}

func TestFirstMoveOnlyRecordsStart(t *testing.T) {
	s, surface := newSession(t)
	s.PointerMove(pt(10, 10))
	assert.Empty(t, surface.segments)

	s.PointerMove(pt(20, 10))
	require.Len(t, surface.segments, 1)
	seg := surface.segments[0]
	assert.Equal(t, pt(10, 10), seg.From)
	assert.Equal(t, pt(20, 10), seg.To)
	assert.Equal(t, state.Black, seg.Color)
	assert.Equal(t, 1, seg.Width)
	assert.NotEmpty(t, seg.StrokeID)
}

func TestReleaseStartsFreshStroke(t *testing.T) {
	s, surface := newSession(t)
	drag(s, pt(10, 10), pt(20, 10), pt(30, 10))
	require.Len(t, surface.segments, 2)
	first := surface.segments[0].StrokeID
	assert.Equal(t, first, surface.segments[1].StrokeID)

	drag(s, pt(100, 100), pt(110, 100))
	require.Len(t, surface.segments, 3)
	seg := surface.segments[2]
	assert.Equal(t, pt(100, 100), seg.From, "no segment joins the two strokes")
	assert.NotEqual(t, first, seg.StrokeID)
}

func TestExportMatchesLastPaint(t *testing.T) {
	s, surface := newSession(t)
	s.ChooseColor(red)
	require.NoError(t, s.SetBrushWidth(10))
	drag(s, pt(20, 50), pt(100, 50))

	s.ChooseColor(blue)
	drag(s, pt(60, 20), pt(60, 80))

	img := exported(t, s)
	assert.Equal(t, blue, pixel(img, 60, 50))
	assert.Equal(t, red, pixel(img, 30, 50))
	assert.Equal(t, state.White, pixel(img, 300, 300))

	// the surface saw the same operations in the same order
	require.Len(t, surface.segments, 2)
	assert.Equal(t, red, surface.segments[0].Color)
	assert.Equal(t, blue, surface.segments[1].Color)
}

func TestEraserDrawsWhite(t *testing.T) {
	s, _ := newSession(t)
	s.ChooseColor(red)
	require.NoError(t, s.SetBrushWidth(10))
	drag(s, pt(20, 50), pt(100, 50))

	s.ToggleEraser()
	drag(s, pt(60, 20), pt(60, 80))

	img := exported(t, s)
	assert.Equal(t, state.White, pixel(img, 60, 50))
	assert.Equal(t, red, pixel(img, 30, 50))
}

func TestEraserToggleRestoresColor(t *testing.T) {
	s, _ := newSession(t)
	var seen []color.Color
	s.OnColorChanged = func(c color.Color) { seen = append(seen, c) }

	s.ChooseColor(blue)
	s.ChooseColor(red)
	assert.True(t, s.ToggleEraser())
	assert.False(t, s.ToggleEraser())

	assert.Equal(t, red, s.State.ActiveColor())
	assert.Equal(t, []color.Color{blue, red, state.White, red}, seen)
}

func TestSampleReadsBuffer(t *testing.T) {
	s, surface := newSession(t)
	s.ChooseColor(red)
	require.NoError(t, s.SetBrushWidth(10))
	drag(s, pt(20, 50), pt(100, 50))

	s.ChooseColor(blue)
	s.ToggleEraser()
	// the surface is cosmetic; dropping its content must not affect sampling
	surface.segments = nil

	c, ok := s.Sample(pt(50, 50))
	require.True(t, ok)
	assert.Equal(t, "#ff0000", state.HexColor(c))
	assert.Equal(t, red, s.State.ActiveColor())
	assert.False(t, s.State.Erasing())
}

func TestSampleOutsideCanvasIsIgnored(t *testing.T) {
	s, _ := newSession(t)
	s.ChooseColor(blue)
	_, ok := s.Sample(pt(601, 10))
	assert.False(t, ok)
	assert.Equal(t, blue, s.State.ActiveColor())
}

func TestResizeInvalidLeavesCanvas(t *testing.T) {
	s, surface := newSession(t)
	require.NoError(t, s.SetBrushWidth(10))
	drag(s, pt(20, 50), pt(100, 50))
	buf := s.Buffer

	zero, five := 0, 5
	assert.False(t, s.Resize(&zero, &five))
	assert.False(t, s.Resize(nil, &five))
	assert.False(t, s.Resize(&five, nil))

	assert.Same(t, buf, s.Buffer)
	assert.Equal(t, 600, s.State.Width)
	assert.Equal(t, 400, s.State.Height)
	assert.Equal(t, 600, surface.width)
	assert.Len(t, surface.segments, 1)
	assert.Equal(t, state.Black, pixel(exported(t, s), 50, 50))
}

func TestResizeDiscardsContent(t *testing.T) {
	s, surface := newSession(t)
	require.NoError(t, s.SetBrushWidth(10))
	drag(s, pt(20, 50), pt(100, 50))
	s.ChangeBackground(blue)

	w, h := 800, 600
	require.True(t, s.Resize(&w, &h))

	assert.Equal(t, 800, s.State.Width)
	assert.Equal(t, 600, s.State.Height)
	assert.Equal(t, 800, surface.width)
	assert.Equal(t, 600, surface.height)
	assert.Equal(t, state.White, surface.background)
	assert.Empty(t, surface.segments)

	img := exported(t, s)
	assert.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds())
	assert.True(t, allWhite(img))
}

func TestClearKeepsSizeAndBackground(t *testing.T) {
	s, surface := newSession(t)
	require.NoError(t, s.SetBrushWidth(10))
	drag(s, pt(20, 50), pt(100, 50))
	s.ChangeBackground(blue)

	require.NoError(t, s.Clear())
	assert.Equal(t, 1, surface.clears)
	assert.Empty(t, surface.segments)
	assert.Equal(t, blue, surface.background)

	img := exported(t, s)
	assert.Equal(t, image.Rect(0, 0, 600, 400), img.Bounds())
	assert.True(t, allWhite(img))
}

func TestBackgroundIsCosmetic(t *testing.T) {
	s, surface := newSession(t)
	before := exported(t, s)

	s.ChangeBackground(blue)
	assert.Equal(t, blue, surface.background)

	after := exported(t, s)
	assert.Equal(t, pixel(before, 0, 0), pixel(after, 0, 0))
	assert.True(t, allWhite(after))
}

func TestTextStampedOnce(t *testing.T) {
	s, surface := newSession(t)
	s.ChooseColor(red)
	require.True(t, s.StageText("hi"))

	s.PointerDown(pt(30, 30))
	drag(s, pt(300, 300), pt(400, 300))
	s.PointerDown(pt(300, 200))
	drag(s, pt(300, 200), pt(400, 200))

	require.Len(t, surface.texts, 1)
	assert.Equal(t, state.TextStamp{At: pt(30, 30), Text: "hi", Color: red}, surface.texts[0])
	assert.Len(t, surface.segments, 2)

	img := exported(t, s)
	inked := false
	for y := 30; y < 43 && !inked; y++ {
		for x := 30; x < 44; x++ {
			if pixel(img, x, y) == red {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked, "text reaches the buffer")
}

func TestPointerDownWithoutTextDoesNothing(t *testing.T) {
	s, surface := newSession(t)
	s.PointerDown(pt(10, 10))
	assert.Empty(t, surface.texts)
	assert.True(t, allWhite(exported(t, s)))
}

func TestSetBrushWidthRejectsUnknown(t *testing.T) {
	s, _ := newSession(t)
	assert.ErrorIs(t, s.SetBrushWidth(7), state.ErrInvalidBrushWidth)
	assert.Equal(t, 1, s.State.BrushWidth())
}

func TestSampleAndEraseAtEveryBrushSize(t *testing.T) {
	paths := map[string][]state.Point{
		"horizontal": {pt(20, 50), pt(60, 50), pt(100, 50)},
		"diagonal":   {pt(20, 20), pt(35, 35), pt(60, 60)},
		"zigzag":     {pt(100, 100), pt(110, 120), pt(120, 100), pt(130, 120)},
	}
	for _, width := range state.BrushSizes {
		for name, path := range paths {
			t.Run(fmt.Sprintf("%s/%d", name, width), func(t *testing.T) {
				s, _ := newSession(t)
				s.ChooseColor(red)
				require.NoError(t, s.SetBrushWidth(width))
				drag(s, path...)

				img := exported(t, s)
				for _, p := range path {
					assert.Equal(t, red, pixel(img, int(p.X), int(p.Y)), "exported %v", p)
				}

				s.ChooseColor(blue)
				c, ok := s.Sample(path[1])
				require.True(t, ok)
				assert.Equal(t, "#ff0000", state.HexColor(c))

				s.ToggleEraser()
				drag(s, path...)
				assert.True(t, allWhite(exported(t, s)), "eraser leaves no fringe")
			})
		}
	}
}
