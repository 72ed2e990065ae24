package state

import (
	"image/color"
	"slices"
)

// CanvasState is everything about the canvas that is not pixels.
// It is owned by the UI goroutine and is not safe for concurrent use.
type CanvasState struct {
	Width, Height int
	// Background is the on-screen background only. The raster buffer
	// never sees it.
	Background color.NRGBA

	blank       color.NRGBA
	penColor    color.NRGBA
	stashed     color.NRGBA
	erasing     bool
	brushWidth  int
	pendingText *string
}

func NewCanvasState(cfg Config) *CanvasState {
	return &CanvasState{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Blank,
		blank:      cfg.Blank,
		penColor:   cfg.PenColor,
		stashed:    cfg.PenColor,
		brushWidth: cfg.BrushWidth,
	}
}

// ActiveColor is the color strokes and text are drawn with.
func (s *CanvasState) ActiveColor() color.NRGBA {
	if s.erasing {
		return s.blank
	}
	return s.penColor
}

func (s *CanvasState) Erasing() bool { return s.erasing }

func (s *CanvasState) Blank() color.NRGBA { return s.blank }

func (s *CanvasState) BrushWidth() int { return s.brushWidth }

func (s *CanvasState) SetBrushWidth(w int) error {
	if !slices.Contains(BrushSizes, w) {
		return ErrInvalidBrushWidth
	}
	s.brushWidth = w
	return nil
}

// ToggleEraser flips between drawing and erasing. Entering erase mode
// stashes the pen color; leaving it restores exactly that color.
func (s *CanvasState) ToggleEraser() bool {
	if s.erasing {
		s.penColor = s.stashed
		s.erasing = false
	} else {
		s.stashed = s.penColor
		s.erasing = true
	}
	return s.erasing
}

// SetPenColor makes c the active color and leaves erase mode.
func (s *CanvasState) SetPenColor(c color.Color) {
	s.penColor = ToNRGBA(c)
	s.erasing = false
}

// Resize updates the dimensions. Non-positive values are rejected.
func (s *CanvasState) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	s.Width, s.Height = width, height
	return true
}

// StageText sets the text stamped by the next pointer press. Empty text
// is ignored.
func (s *CanvasState) StageText(text string) bool {
	if text == "" {
		return false
	}
	s.pendingText = &text
	return true
}

func (s *CanvasState) HasPendingText() bool { return s.pendingText != nil }

// TakePendingText returns the staged text and clears it.
func (s *CanvasState) TakePendingText() (string, bool) {
	if s.pendingText == nil {
		return "", false
	}
	text := *s.pendingText
	s.pendingText = nil
	return text, true
}
