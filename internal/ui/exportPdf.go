package ui

import (
	"LocalPaint/internal/export"

	"fyne.io/fyne/v2/dialog"
)

func (c *controller) exportPDF() {
	showSaveDialog(c.window, export.PDFExt, func(path string) {
		if err := c.exportPDFTo(path); err != nil {
			c.fail("PDF export failed", err)
			return
		}
		dialog.ShowInformation("Exported", "PDF saved to "+path, c.window)
	})
}

func (c *controller) exportPDFTo(path string) error {
	return export.PDF(export.EnsureExtension(path, export.PDFExt), c.session.Image())
}
