package ui

import (
	"image/color"
	"strconv"

	"LocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
	rect     *canvas.Rectangle
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped, rect: canvas.NewRectangle(c)}
	s.ExtendBaseWidget(s)
	return s
}

// SetColor repaints the swatch. The preview swatch follows the active
// color through it.
func (s *colorSwatch) SetColor(c color.Color) {
	s.Color = c
	s.rect.FillColor = c
	s.rect.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var palette = []color.Color{
	state.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

func brushOptions() []string {
	opts := make([]string, len(state.BrushSizes))
	for i, w := range state.BrushSizes {
		opts[i] = strconv.Itoa(w)
	}
	return opts
}

// --- The Main Toolbar ---
func NewToolbar(c *controller) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentClearIcon(), c.clear),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), c.pickColor),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), c.save),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), c.exportPDF),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), c.toggleEraser), // Eraser
		widget.NewToolbarAction(theme.ViewFullScreenIcon(), c.resize),
		widget.NewToolbarAction(theme.FileTextIcon(), c.addText),
		widget.NewToolbarAction(theme.ColorChromaticIcon(), c.changeBackground),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.HelpIcon(), c.help),
	)

	// --- Brush Size ---
	sizeSelect := widget.NewSelect(brushOptions(), func(val string) {
		if w, err := strconv.Atoi(val); err == nil {
			c.setBrush(w)
		}
	})
	sizeSelect.SetSelected(strconv.Itoa(c.session.State.BrushWidth()))

	// --- Color Palette ---
	colorBox := container.NewHBox()
	for _, col := range palette {
		colorBox.Add(newColorSwatch(col, c.session.ChooseColor))
	}

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sizeSelect,
		widget.NewSeparator(),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		c.preview,
		layout.NewSpacer(),
	)
}
