// Package board ties the shape store, the undo history and the drawing tools
// together behind one explicitly constructed object. The renderer feeds it
// pointer events and reads the current state back.
package board

import (
	"errors"
	"fmt"
	"log"

	"DrawSpace/internal/config"
	"DrawSpace/internal/props"
	"DrawSpace/internal/state"
	"DrawSpace/internal/tools"
)

// ErrUnknownTool is returned by SetTool for ids outside the tool enumeration.
var ErrUnknownTool = errors.New("unknown tool")

// Board is the whiteboard core. It is not safe for concurrent use; all calls
// are expected from the UI goroutine.
type Board struct {
	store   *state.Store
	history *state.History
	props   *props.Store
	ids     *state.IDSource
	table   map[tools.ID]tools.Tool

	tool      tools.ID
	selection *Selection
	minSize   float32
	debug     bool

	// OnChange is called after anything visible changed.
	OnChange func()
}

// New creates a board from cfg. Tool styles come from p; a nil p uses the
// built-in defaults without persistence.
func New(cfg config.Config, p *props.Store) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("could not create board: %w", err)
	}
	if p == nil {
		p = props.NewStore(nil, cfg.PreferencesKey)
	}
	store := state.NewStore()
	b := &Board{
		store:   store,
		history: state.NewHistory(store, cfg.HistorySize),
		props:   p,
		ids:     state.NewIDSource(),
		tool:    tools.Pointer,
		minSize: cfg.MinTransformSize,
		debug:   cfg.Debug,
	}
	b.table = tools.NewTable(tools.Env{History: b.history, Props: p, IDs: b.ids})
	if err := b.SetTool(tools.ID(cfg.DefaultTool)); err != nil {
		return nil, err
	}
	log.Printf("[BOARD] Created board (history size %d, tool %s)", b.history.MaxSize(), b.tool)
	return b, nil
}

// State returns the current shapes for rendering.
func (b *Board) State() state.CanvasState { return b.store.Current() }

// Tool returns the active tool.
func (b *Board) Tool() tools.ID { return b.tool }

// Props returns the tool properties store.
func (b *Board) Props() *props.Store { return b.props }

// History exposes the undo history, mainly for inspection.
func (b *Board) History() *state.History { return b.history }

// SetTool switches the active tool. An open stroke of the previous tool is
// finished first, and leaving the pointer tool drops the selection.
func (b *Board) SetTool(id tools.ID) error {
	if _, err := tools.ParseID(string(id)); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownTool, id)
	}
	if id == b.tool {
		return nil
	}
	b.finishStroke()
	if id != tools.Pointer {
		b.selection = nil
	}
	if b.debug {
		log.Printf("[BOARD] Tool %s -> %s", b.tool, id)
	}
	b.tool = id
	b.changed()
	return nil
}

// Drawing reports whether a stroke is in progress.
func (b *Board) Drawing() bool {
	t := b.active()
	return t != nil && t.Drawing()
}

// PointerDown starts a stroke with the active tool. With the pointer tool it
// clears the selection; the renderer selects shapes through Select.
func (b *Board) PointerDown(p state.Point) {
	if b.tool == tools.Pointer {
		if b.selection != nil {
			b.selection = nil
			b.changed()
		}
		return
	}
	t := b.active()
	if t == nil {
		return
	}
	t.OnPointerDown(p)
	if b.debug {
		log.Printf("[BOARD] %s stroke %s started at (%.1f, %.1f)", b.tool, t.ActiveID(), p.X, p.Y)
	}
	b.changed()
}

// PointerMove feeds the active stroke. Without one it does nothing.
func (b *Board) PointerMove(p state.Point) {
	t := b.active()
	if t == nil || !t.Drawing() {
		return
	}
	t.OnPointerMove(p)
	b.changed()
}

// PointerUp ends the active stroke.
func (b *Board) PointerUp() {
	t := b.active()
	if t == nil || !t.Drawing() {
		return
	}
	if b.debug {
		log.Printf("[BOARD] %s stroke %s finished", b.tool, t.ActiveID())
	}
	t.OnPointerUp()
	b.changed()
}

func (b *Board) CanUndo() bool { return b.history.CanUndo() }
func (b *Board) CanRedo() bool { return b.history.CanRedo() }

// Undo reverts the last edit. An open stroke is finished first.
func (b *Board) Undo() bool {
	b.finishStroke()
	if !b.history.Undo() {
		return false
	}
	b.dropStaleSelection()
	b.changed()
	return true
}

// Redo re-applies the last undone edit.
func (b *Board) Redo() bool {
	b.finishStroke()
	if !b.history.Redo() {
		return false
	}
	b.dropStaleSelection()
	b.changed()
	return true
}

// Clear removes every shape as a single undo step.
func (b *Board) Clear() bool {
	b.finishStroke()
	if b.store.Current().Len() == 0 {
		return false
	}
	b.history.SaveToHistory()
	b.store.Clear()
	b.selection = nil
	log.Printf("[BOARD] Cleared board")
	b.changed()
	return true
}

func (b *Board) active() tools.Tool {
	return b.table[b.tool]
}

func (b *Board) finishStroke() {
	if t := b.active(); t != nil && t.Drawing() {
		if b.debug {
			log.Printf("[BOARD] Finishing open %s stroke %s", b.tool, t.ActiveID())
		}
		t.OnPointerUp()
	}
}

func (b *Board) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}
