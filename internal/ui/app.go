package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"DrawSpace/internal/board"
	"DrawSpace/internal/config"
)

// NewWindow builds the main window around b without showing it.
func NewWindow(a fyne.App, b *board.Board, cfg config.Config) fyne.Window {
	w := a.NewWindow("DrawSpace")
	w.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	view := NewBoardWidget(b)
	toolbar := NewToolbar(b, view)
	b.OnChange = func() {
		view.Refresh()
		toolbar.Refresh()
		view.SetStatus(status(b))
	}
	view.SetStatus(status(b))

	w.SetContent(container.NewBorder(toolbar.Content(), view.StatusBar(), nil, nil, view))
	addShortcuts(w, b)
	return w
}

// RunApp shows the main window and blocks until it is closed.
func RunApp(a fyne.App, b *board.Board, cfg config.Config) {
	NewWindow(a, b, cfg).ShowAndRun()
}

func addShortcuts(w fyne.Window, b *board.Board) {
	c := w.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		b.Undo()
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		b.Redo()
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}, func(fyne.Shortcut) {
		b.Redo()
	})
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			b.DeleteSelected()
		case fyne.KeyEscape:
			b.ClearSelection()
		}
	})
}
