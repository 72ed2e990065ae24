package ui

import (
	"image/color"

	"LocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the on-screen canvas. It only renders what it is told to
// and reports pointer input through its callbacks.
type BoardWidget struct {
	widget.BaseWidget
	size       fyne.Size
	background color.Color
	objects    []fyne.CanvasObject
	strokeIDs  []string

	OnPress   func(p state.Point)
	OnDrag    func(p state.Point)
	OnRelease func()
	OnSample  func(p state.Point)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget() *BoardWidget {
	b := &BoardWidget{background: color.White}
	b.ExtendBaseWidget(b)
	return b
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: p.X, Y: p.Y}
}

func toPos(p state.Point) fyne.Position {
	return fyne.NewPos(p.X, p.Y)
}

// DrawSegment adds a line with round caps.
func (b *BoardWidget) DrawSegment(seg state.Segment) {
	width := float32(seg.Width)
	line := canvas.NewLine(seg.Color)
	line.StrokeWidth = width
	line.Position1 = toPos(seg.From)
	line.Position2 = toPos(seg.To)
	b.objects = append(b.objects, line)

	// canvas.Line has butt ends; dots at the stroke start and every joint
	// round them off
	newStroke := len(b.strokeIDs) == 0 || b.strokeIDs[len(b.strokeIDs)-1] != seg.StrokeID
	if width > 2 {
		if newStroke {
			b.objects = append(b.objects, capDot(seg.From, width, seg.Color))
		}
		b.objects = append(b.objects, capDot(seg.To, width, seg.Color))
	}

	if newStroke {
		b.strokeIDs = append(b.strokeIDs, seg.StrokeID)
	}
	b.Refresh()
}

func capDot(at state.Point, width float32, c color.Color) *canvas.Circle {
	r := width / 2
	dot := canvas.NewCircle(c)
	dot.Position1 = fyne.NewPos(at.X-r, at.Y-r)
	dot.Position2 = fyne.NewPos(at.X+r, at.Y+r)
	return dot
}

func (b *BoardWidget) DrawText(t state.TextStamp) {
	txt := canvas.NewText(t.Text, t.Color)
	txt.TextSize = 13
	txt.TextStyle = fyne.TextStyle{Monospace: true}
	txt.Move(toPos(t.At))
	b.objects = append(b.objects, txt)
	b.Refresh()
}

func (b *BoardWidget) Clear() {
	b.objects = nil
	b.strokeIDs = nil
	b.Refresh()
}

func (b *BoardWidget) Reset(width, height int, background color.Color) {
	b.size = fyne.NewSize(float32(width), float32(height))
	b.background = background
	b.Clear()
}

func (b *BoardWidget) SetBackground(c color.Color) {
	b.background = c
	b.Refresh()
}

// StrokeCount is the number of distinct strokes on screen.
func (b *BoardWidget) StrokeCount() int {
	return len(b.strokeIDs)
}

func (b *BoardWidget) CanvasSize() fyne.Size {
	return b.size
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	switch e.Button {
	case desktop.MouseButtonPrimary:
		if b.OnPress != nil {
			b.OnPress(toPoint(e.Position))
		}
	case desktop.MouseButtonSecondary:
		if b.OnSample != nil {
			b.OnSample(toPoint(e.Position))
		}
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.release()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.OnDrag != nil {
		b.OnDrag(toPoint(e.Position))
	}
}

func (b *BoardWidget) DragEnd() {
	b.release()
}

func (b *BoardWidget) release() {
	if b.OnRelease != nil {
		b.OnRelease()
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(b.background)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.board.objects)+1)
	objects = append(objects, r.background)
	return append(objects, r.board.objects...)
}

func (r *boardWidgetRenderer) Refresh() {
	r.background.FillColor = r.board.background
	r.background.Resize(r.board.size)
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(fyne.Size) {
	r.background.Resize(r.board.size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.size
}

func (r *boardWidgetRenderer) Destroy() {}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut() {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}
