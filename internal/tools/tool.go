// Package tools contains the drawing tools. Each drawing tool is a small state
// machine (idle, drawing) fed by pointer events, and writes into the shape
// store through the history so every stroke is one undo step.
package tools

import (
	"fmt"
	"strings"

	"DrawSpace/internal/props"
	"DrawSpace/internal/state"
)

// ID identifies an interaction mode.
type ID string

const (
	Pointer   ID = "pointer"
	Hand      ID = "hand"
	Line      ID = "line"
	Rectangle ID = "rectangle"
	Ellipse   ID = "ellipse"
	Arrow     ID = "arrow"
	Pen       ID = "pen"
	Eraser    ID = "eraser"

	// Placeholders with no behaviour yet.
	Text      ID = "text"
	Image     ID = "image"
	Duplicate ID = "duplicate"
	Connect   ID = "connect"
	Lock      ID = "lock"
)

var all = []ID{Pointer, Hand, Line, Rectangle, Ellipse, Arrow, Pen, Eraser, Text, Image, Duplicate, Connect, Lock}

// All returns every known tool in toolbar order.
func All() []ID {
	return append([]ID(nil), all...)
}

// ParseID converts s to a known ID.
func ParseID(s string) (ID, error) {
	for _, id := range all {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown tool %q", s)
}

// IsDrawing reports whether the tool creates shapes.
func (id ID) IsDrawing() bool {
	switch id {
	case Line, Rectangle, Ellipse, Arrow, Pen, Eraser:
		return true
	}
	return false
}

// IsPlaceholder reports whether the tool is listed but not implemented.
func (id ID) IsPlaceholder() bool {
	switch id {
	case Text, Image, Duplicate, Connect, Lock:
		return true
	}
	return false
}

var instructions = map[ID]string{
	Pointer:   "Click to select an object, drag to move it, Shift+drag to resize",
	Hand:      "Click and drag to move the canvas",
	Line:      "Click and drag to create a line",
	Rectangle: "Click and drag to create a rectangle",
	Ellipse:   "Click and drag to create an ellipse",
	Arrow:     "Click and drag to create an arrow",
	Pen:       "Click and drag to draw freely",
	Eraser:    "Click and drag to erase",
}

// Instruction is a one-line usage hint for the tool.
func (id ID) Instruction() string {
	if s, ok := instructions[id]; ok {
		return s
	}
	if id.IsPlaceholder() {
		return fmt.Sprintf("%s is yet to be implemented", strings.ToUpper(string(id[:1]))+string(id[1:]))
	}
	return ""
}

// Tool is the state machine behind a drawing tool.
type Tool interface {
	OnPointerDown(p state.Point)
	OnPointerMove(p state.Point)
	OnPointerUp()
	// Drawing reports whether a stroke is in progress.
	Drawing() bool
	// ActiveID is the id of the shape being drawn, empty when idle.
	ActiveID() string
}

// Env is everything a tool needs to create shapes.
type Env struct {
	History *state.History
	Props   *props.Store
	IDs     *state.IDSource
}

func (e Env) store() *state.Store { return e.History.Store() }

// NewTable builds one state machine per drawing tool. Tools without drawing
// behaviour have no entry.
func NewTable(env Env) map[ID]Tool {
	return map[ID]Tool{
		Pen:       NewFreeDraw(env, state.FreePen),
		Eraser:    NewFreeDraw(env, state.FreeEraser),
		Line:      NewLineTool(env),
		Rectangle: NewRectangleTool(env),
		Ellipse:   NewEllipseTool(env),
		Arrow:     NewArrowTool(env),
	}
}

// stroke is the idle/drawing bookkeeping shared by every tool.
type stroke struct {
	drawing bool
	id      string
	start   state.Point
}

func (s *stroke) begin(id string, p state.Point) {
	s.drawing = true
	s.id = id
	s.start = p
}

func (s *stroke) end() {
	s.drawing = false
	s.id = ""
}

func (s *stroke) Drawing() bool    { return s.drawing }
func (s *stroke) ActiveID() string { return s.id }

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
