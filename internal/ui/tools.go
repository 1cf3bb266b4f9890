package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"DrawSpace/internal/board"
	"DrawSpace/internal/props"
	"DrawSpace/internal/tools"
)

var strokePalette = []string{"#0f172a", "#ef4444", "#16a34a", "#2563eb", "#f59e0b", "#111827"}

var backgroundPalette = []string{"transparent", "#fee2e2", "#bbf7d0", "#bfdbfe", "#fde68a", "#f3f4f6"}

var toolLabels = map[tools.ID]string{
	tools.Pointer:   "Select",
	tools.Hand:      "Hand",
	tools.Line:      "Line",
	tools.Rectangle: "Rect",
	tools.Ellipse:   "Ellipse",
	tools.Arrow:     "Arrow",
	tools.Pen:       "Pen",
	tools.Eraser:    "Eraser",
	tools.Text:      "Text",
	tools.Image:     "Image",
	tools.Duplicate: "Duplicate",
	tools.Connect:   "Connect",
	tools.Lock:      "Lock",
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Value    string
	OnTapped func(string)
}

func newColorSwatch(value string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Value: value, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	fill, ok := parseColor(s.Value, 1)
	if !ok {
		fill = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	rect := canvas.NewRectangle(fill)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Value)
	}
}

// Toolbar holds the tool buttons and the property controls for the active
// tool.
type Toolbar struct {
	board   *board.Board
	buttons map[tools.ID]*widget.Button
	actions *widget.Toolbar
	undo    *widget.ToolbarAction
	redo    *widget.ToolbarAction
	width   *widget.Slider
	opacity *widget.Slider
	fill    *fyne.Container
	content fyne.CanvasObject
}

// NewToolbar builds the toolbar for b. Call Refresh after the board changed.
func NewToolbar(b *board.Board, view *BoardWidget) *Toolbar {
	tb := &Toolbar{board: b, buttons: make(map[tools.ID]*widget.Button)}

	toolBox := container.NewHBox()
	for _, id := range tools.All() {
		btn := widget.NewButton(toolLabels[id], func() {
			if err := b.SetTool(id); err != nil {
				log.Printf("[UI] %v", err)
			}
		})
		if id.IsPlaceholder() {
			btn.Disable()
		}
		tb.buttons[id] = btn
		toolBox.Add(btn)
	}

	tb.undo = widget.NewToolbarAction(theme.ContentUndoIcon(), func() { b.Undo() })
	tb.redo = widget.NewToolbarAction(theme.ContentRedoIcon(), func() { b.Redo() })
	tb.actions = widget.NewToolbar(
		tb.undo,
		tb.redo,
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { b.DeleteSelected() }),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() { b.Clear() }),
		widget.NewToolbarAction(theme.ViewRestoreIcon(), view.ResetView),
	)

	strokeBox := container.NewHBox()
	for _, c := range strokePalette {
		strokeBox.Add(newColorSwatch(c, func(string) {
			tb.update(props.Update{StrokeColor: &c})
		}))
	}
	tb.fill = container.NewHBox()
	for _, c := range backgroundPalette {
		tb.fill.Add(newColorSwatch(c, func(string) {
			tb.update(props.Update{BackgroundColor: &c})
		}))
	}

	tb.width = widget.NewSlider(1, 50)
	tb.width.OnChangeEnded = func(val float64) {
		w := float32(val)
		tb.update(props.Update{StrokeWidth: &w})
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), tb.width)

	tb.opacity = widget.NewSlider(0, 1)
	tb.opacity.Step = 0.05
	tb.opacity.OnChangeEnded = func(val float64) {
		o := float32(val)
		tb.update(props.Update{Opacity: &o})
	}
	opacityContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), tb.opacity)

	tb.content = container.NewVBox(
		container.NewHBox(toolBox, widget.NewSeparator(), tb.actions),
		container.NewHBox(
			widget.NewLabel("Stroke:"),
			strokeBox,
			widget.NewSeparator(),
			widget.NewLabel("Fill:"),
			tb.fill,
			widget.NewSeparator(),
			widget.NewLabel("Size:"),
			sliderContainer,
			widget.NewLabel("Opacity:"),
			opacityContainer,
			layout.NewSpacer(),
		),
	)
	tb.Refresh()
	return tb
}

// Content is the toolbar's canvas object.
func (tb *Toolbar) Content() fyne.CanvasObject { return tb.content }

// Refresh syncs buttons and controls with the board.
func (tb *Toolbar) Refresh() {
	active := tb.board.Tool()
	for id, btn := range tb.buttons {
		if id == active {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
	if tb.board.CanUndo() {
		tb.undo.Enable()
	} else {
		tb.undo.Disable()
	}
	if tb.board.CanRedo() {
		tb.redo.Enable()
	} else {
		tb.redo.Disable()
	}

	p, ok := tb.board.Props().Get(string(active))
	if !ok {
		tb.width.Disable()
		tb.opacity.Disable()
		return
	}
	tb.width.Enable()
	tb.width.SetValue(float64(p.StrokeWidth))
	tb.opacity.Enable()
	tb.opacity.SetValue(float64(p.Opacity))
	if active == tools.Rectangle || active == tools.Ellipse {
		tb.fill.Show()
	} else {
		tb.fill.Hide()
	}
}

func (tb *Toolbar) update(u props.Update) {
	tool := string(tb.board.Tool())
	if _, err := tb.board.Props().Update(tool, u); err != nil {
		log.Printf("[UI] %v", err)
		return
	}
	tb.Refresh()
}

// status is the one-line summary shown under the board.
func status(b *board.Board) string {
	s := fmt.Sprintf("Tool: %s  Shapes: %d", toolLabels[b.Tool()], b.State().Len())
	if sel, ok := b.Selection(); ok {
		s += fmt.Sprintf("  Selected: %s", sel.Kind)
	}
	if hint := b.Tool().Instruction(); hint != "" {
		s += "  |  " + hint
	}
	return s
}
