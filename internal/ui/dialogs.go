package ui

import (
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"LocalPaint/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// Dialogs are modal: each callback runs on the UI goroutine once the user
// confirms, and not at all on cancel.

// showColorPicker is a variable so tests can observe the pickers opened.
var showColorPicker = func(w fyne.Window, title string, initial color.Color, picked func(color.Color)) {
	picker := dialog.NewColorPicker(title, "", picked, w)
	picker.Advanced = true
	picker.SetColor(initial)
	picker.Show()
}

// parseDimension returns nil for anything that is not an integer.
func parseDimension(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

func showResizeDialog(w fyne.Window, width, height int, done func(width, height *int)) {
	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder(strconv.Itoa(width))
	heightEntry := widget.NewEntry()
	heightEntry.SetPlaceHolder(strconv.Itoa(height))

	items := []*widget.FormItem{
		widget.NewFormItem("New width", widthEntry),
		widget.NewFormItem("New height", heightEntry),
	}
	dialog.ShowForm("Resize canvas", "Resize", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		done(parseDimension(widthEntry.Text), parseDimension(heightEntry.Text))
	}, w)
}

func showTextDialog(w fyne.Window, done func(text string)) {
	entry := widget.NewEntry()
	items := []*widget.FormItem{widget.NewFormItem("Text", entry)}
	dialog.ShowForm("Add text", "OK", "Cancel", items, func(ok bool) {
		if ok {
			done(entry.Text)
		}
	}, w)
}

// showSaveDialog asks for a destination and hands back a path that ends
// in ext. The file the dialog created is released first so the caller can
// write to the corrected path.
func showSaveDialog(w fyne.Window, ext string, chosen func(path string)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		if err := writer.Close(); err != nil {
			log.Printf("[UI] Error closing writer: %v", err)
		}
		fixed := releaseSaveTarget(path, ext)
		chosen(fixed)
	}, w)
	d.SetFileName("drawing" + ext)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

// releaseSaveTarget returns path with ext appended if missing. When the
// name changes, the empty file the dialog created is removed.
func releaseSaveTarget(path, ext string) string {
	fixed := export.EnsureExtension(path, ext)
	if fixed == path {
		return path
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[UI] Error removing %s: %v", path, err)
	}
	return fixed
}
