package ui

import (
	"fmt"
	"log"

	"LocalPaint/internal/export"
	"LocalPaint/internal/paint"
	"LocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
)

const helpText = "Shortcuts:\n" +
	"Ctrl+S - Save\n" +
	"Ctrl+C - Choose color\n\n" +
	"Drag with the left button to draw.\n" +
	"Right click to pick up a color from the canvas."

// controller connects the window's widgets to a paint session.
type controller struct {
	window  fyne.Window
	board   *BoardWidget
	scroll  *container.Scroll
	preview *colorSwatch
	session *paint.Session
}

func newController(w fyne.Window, cfg state.Config) (*controller, error) {
	board := NewBoardWidget()
	session, err := paint.NewSession(cfg, board)
	if err != nil {
		return nil, err
	}
	c := &controller{
		window:  w,
		board:   board,
		scroll:  container.NewScroll(board),
		preview: newColorSwatch(session.State.ActiveColor(), nil),
		session: session,
	}

	board.OnPress = session.PointerDown
	board.OnDrag = session.PointerMove
	board.OnRelease = session.PointerUp
	board.OnSample = func(p state.Point) { session.Sample(p) }
	session.OnColorChanged = c.preview.SetColor
	return c, nil
}

func (c *controller) content() fyne.CanvasObject {
	return container.NewBorder(NewToolbar(c), nil, nil, nil, c.scroll)
}

func (c *controller) addShortcuts() {
	cv := c.window.Canvas()
	cv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { c.save() })
	// the desktop driver reports Ctrl+C as the standard copy shortcut
	cv.AddShortcut(&fyne.ShortcutCopy{}, func(fyne.Shortcut) { c.pickColor() })
}

func (c *controller) clear() {
	if err := c.session.Clear(); err != nil {
		c.fail("Clear failed", err)
	}
}

func (c *controller) pickColor() {
	showColorPicker(c.window, "Choose color", c.session.State.ActiveColor(), c.session.ChooseColor)
}

func (c *controller) changeBackground() {
	showColorPicker(c.window, "Change background", c.session.State.Background, c.session.ChangeBackground)
}

func (c *controller) toggleEraser() {
	c.session.ToggleEraser()
}

func (c *controller) setBrush(width int) {
	if err := c.session.SetBrushWidth(width); err != nil {
		fyne.LogError("Brush size", err)
	}
}

func (c *controller) help() {
	dialog.ShowInformation("Help", helpText, c.window)
}

func (c *controller) resize() {
	showResizeDialog(c.window, c.session.State.Width, c.session.State.Height, c.resizeTo)
}

func (c *controller) resizeTo(width, height *int) {
	if c.session.Resize(width, height) {
		c.scroll.Refresh()
	}
}

func (c *controller) addText() {
	showTextDialog(c.window, func(text string) { c.session.StageText(text) })
}

func (c *controller) save() {
	showSaveDialog(c.window, export.PNGExt, func(path string) {
		if err := c.saveTo(path); err != nil {
			c.fail("Save failed", err)
			return
		}
		dialog.ShowInformation("Saved", "Image saved to "+path, c.window)
	})
}

func (c *controller) saveTo(path string) error {
	return export.PNG(export.EnsureExtension(path, export.PNGExt), c.session.Image())
}

func (c *controller) fail(what string, err error) {
	log.Printf("[UI] %s: %v", what, err)
	dialog.ShowError(fmt.Errorf("%s: %w", what, err), c.window)
}

// RunApp opens the paint window and blocks until it is closed.
func RunApp() {
	myApp := app.New()
	myWindow := myApp.NewWindow("LocalPaint")

	cfg := state.DefaultConfig()
	ctl, err := newController(myWindow, cfg)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	ctl.addShortcuts()

	myWindow.SetContent(ctl.content())
	myWindow.Resize(fyne.NewSize(float32(cfg.Width)+40, float32(cfg.Height)+80))
	myWindow.ShowAndRun()
}
