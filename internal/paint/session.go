// Package paint keeps the board on screen and the raster buffer in step.
// Every change that alters what the canvas looks like goes through a
// Session method that applies it to both.
package paint

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"LocalPaint/internal/raster"
	"LocalPaint/internal/state"
)

// Surface is the on-screen half of the canvas.
type Surface interface {
	DrawSegment(seg state.Segment)
	DrawText(t state.TextStamp)
	// Clear removes drawn content but keeps the background.
	Clear()
	// Reset replaces the surface with a blank one of the given size.
	Reset(width, height int, background color.Color)
	SetBackground(c color.Color)
}

// Session is the application state. It must only be used from the UI
// goroutine.
type Session struct {
	State  *state.CanvasState
	Buffer *raster.Buffer

	surface Surface
	strokes state.StrokeClock
	last    *state.Point

	// OnColorChanged is called with the new active color after every
	// color change.
	OnColorChanged func(c color.Color)
}

func NewSession(cfg state.Config, surface Surface) (*Session, error) {
	buf, err := raster.New(cfg.Width, cfg.Height, cfg.Blank)
	if err != nil {
		return nil, fmt.Errorf("allocate canvas: %w", err)
	}
	s := &Session{
		State:   state.NewCanvasState(cfg),
		Buffer:  buf,
		surface: surface,
	}
	surface.Reset(cfg.Width, cfg.Height, cfg.Blank)
	return s, nil
}

// PointerDown stamps pending text at p, if any is staged.
func (s *Session) PointerDown(p state.Point) {
	text, ok := s.State.TakePendingText()
	if !ok {
		return
	}
	stamp := state.TextStamp{At: p, Text: text, Color: s.State.ActiveColor()}
	s.surface.DrawText(stamp)
	s.Buffer.DrawText(stamp)
	log.Printf("[PAINT] Placed text %q at (%.0f, %.0f)", text, p.X, p.Y)
}

// PointerMove extends the current stroke to p. The first move of a drag
// only records where the stroke starts.
func (s *Session) PointerMove(p state.Point) {
	if s.last == nil {
		id := s.strokes.Begin()
		log.Printf("[PAINT] Stroke %s started at (%.0f, %.0f)", id, p.X, p.Y)
		s.last = &p
		return
	}
	s.apply(state.Segment{
		StrokeID: s.strokes.Current(),
		From:     *s.last,
		To:       p,
		Color:    s.State.ActiveColor(),
		Width:    s.State.BrushWidth(),
	})
	s.strokes.Tick()
	s.last = &p
}

// PointerUp ends the stroke so the next drag starts unconnected.
func (s *Session) PointerUp() {
	if s.last == nil {
		return
	}
	s.last = nil
	id, n := s.strokes.End()
	log.Printf("[PAINT] Stroke %s finished with %d segments", id, n)
}

func (s *Session) apply(seg state.Segment) {
	s.surface.DrawSegment(seg)
	s.Buffer.DrawSegment(seg)
}

// Sample adopts the buffer pixel under p as the pen color.
func (s *Session) Sample(p state.Point) (color.NRGBA, bool) {
	c, ok := s.Buffer.At(p)
	if !ok {
		log.Printf("[PAINT] Ignored sample outside canvas at (%.0f, %.0f)", p.X, p.Y)
		return c, false
	}
	s.State.SetPenColor(c)
	log.Printf("[PAINT] Sampled %s at (%.0f, %.0f)", state.HexColor(c), p.X, p.Y)
	s.colorChanged()
	return c, true
}

// ChooseColor sets the pen color explicitly and leaves erase mode.
func (s *Session) ChooseColor(c color.Color) {
	s.State.SetPenColor(c)
	s.colorChanged()
}

func (s *Session) ToggleEraser() bool {
	on := s.State.ToggleEraser()
	log.Printf("[PAINT] Eraser on: %v", on)
	s.colorChanged()
	return on
}

func (s *Session) SetBrushWidth(w int) error {
	if err := s.State.SetBrushWidth(w); err != nil {
		return fmt.Errorf("brush width %d: %w", w, err)
	}
	return nil
}

// StageText queues text for the next pointer press.
func (s *Session) StageText(text string) bool {
	return s.State.StageText(text)
}

// Clear wipes the drawing. The buffer comes back white at the current size
// while the surface keeps its background.
func (s *Session) Clear() error {
	buf, err := raster.New(s.State.Width, s.State.Height, s.State.Blank())
	if err != nil {
		return fmt.Errorf("clear canvas: %w", err)
	}
	s.surface.Clear()
	s.Buffer = buf
	log.Println("[PAINT] Canvas cleared")
	return nil
}

// Resize replaces both surfaces with blank ones of the new size. A nil or
// non-positive dimension leaves the canvas untouched and returns false.
func (s *Session) Resize(width, height *int) bool {
	if width == nil || height == nil || *width <= 0 || *height <= 0 {
		return false
	}
	buf, err := raster.New(*width, *height, s.State.Blank())
	if err != nil {
		return false
	}
	s.State.Resize(*width, *height)
	s.State.Background = s.State.Blank()
	s.Buffer = buf
	s.surface.Reset(*width, *height, s.State.Background)
	s.last = nil
	log.Printf("[PAINT] Canvas resized to %dx%d", *width, *height)
	return true
}

// ChangeBackground recolors the on-screen background only. Exports keep
// the buffer's white background.
func (s *Session) ChangeBackground(c color.Color) {
	s.State.Background = state.ToNRGBA(c)
	s.surface.SetBackground(s.State.Background)
}

// Image is what gets exported.
func (s *Session) Image() image.Image {
	return s.Buffer.Image()
}

// Export writes the buffer as PNG.
func (s *Session) Export(w io.Writer) error {
	return s.Buffer.EncodePNG(w)
}

func (s *Session) colorChanged() {
	if s.OnColorChanged != nil {
		s.OnColorChanged(s.State.ActiveColor())
	}
}
