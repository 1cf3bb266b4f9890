// Package props keeps the per-tool style defaults that new shapes are created
// with. The whole map is persisted through a fyne preferences store.
package props

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"DrawSpace/internal/state"
)

// DefaultKey is the preferences key the properties are stored under.
const DefaultKey = "drawspace-tool-properties"

// ErrNoProperties is returned for tools that do not carry style properties.
var ErrNoProperties = errors.New("tool has no properties")

// Tool identifiers that carry properties. They match the tool ids used by the
// tools package.
const (
	Pen       = "pen"
	Eraser    = "eraser"
	Line      = "line"
	Rectangle = "rectangle"
	Ellipse   = "ellipse"
	Arrow     = "arrow"
)

// Tools lists every tool that has properties.
var Tools = []string{Pen, Eraser, Line, Rectangle, Ellipse, Arrow}

// Properties is the style a tool applies to the shapes it creates.
type Properties struct {
	StrokeColor     string  `json:"strokeColor"`
	BackgroundColor string  `json:"backgroundColor"`
	StrokeWidth     float32 `json:"strokeWidth"`
	Opacity         float32 `json:"opacity"`
	CornerRadius    float32 `json:"cornerRadius,omitempty"`
}

// Update is a partial Properties. Nil fields are left unchanged.
type Update struct {
	StrokeColor     *string  `json:"strokeColor,omitempty"`
	BackgroundColor *string  `json:"backgroundColor,omitempty"`
	StrokeWidth     *float32 `json:"strokeWidth,omitempty"`
	Opacity         *float32 `json:"opacity,omitempty"`
	CornerRadius    *float32 `json:"cornerRadius,omitempty"`
}

// Apply returns p with every non-nil field of u written over it.
func (u Update) Apply(p Properties) Properties {
	if u.StrokeColor != nil {
		p.StrokeColor = *u.StrokeColor
	}
	if u.BackgroundColor != nil {
		p.BackgroundColor = *u.BackgroundColor
	}
	if u.StrokeWidth != nil {
		p.StrokeWidth = *u.StrokeWidth
	}
	if u.Opacity != nil {
		p.Opacity = *u.Opacity
	}
	if u.CornerRadius != nil {
		p.CornerRadius = *u.CornerRadius
	}
	return p
}

const (
	defaultStroke     = "#0f172a"
	defaultBackground = "transparent"
)

// Default returns the built-in properties for a tool.
func Default(tool string) (Properties, bool) {
	switch tool {
	case Pen, Line, Arrow:
		return Properties{StrokeColor: defaultStroke, StrokeWidth: 2, Opacity: 1}, true
	case Eraser:
		return Properties{StrokeWidth: 10, Opacity: 1}, true
	case Rectangle, Ellipse:
		return Properties{StrokeColor: defaultStroke, BackgroundColor: defaultBackground, StrokeWidth: 2, Opacity: 1}, true
	}
	return Properties{}, false
}

// Preferences is the subset of fyne.Preferences the store needs.
type Preferences interface {
	StringWithFallback(key, fallback string) string
	SetString(key, value string)
}

// Store maps tool ids to their current properties.
type Store struct {
	prefs      Preferences
	key        string
	properties map[string]Properties
}

// NewStore creates a store backed by prefs and loads anything already saved
// under key. An empty key selects DefaultKey. prefs may be nil, in which case
// nothing is persisted.
func NewStore(prefs Preferences, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{prefs: prefs, key: key}
	s.Load()
	return s
}

// Load replaces the in-memory map with the saved one merged over the built-in
// defaults. Tools missing from storage get their defaults; unreadable data is
// logged and ignored.
func (s *Store) Load() {
	s.properties = buildDefaults()
	if s.prefs == nil {
		return
	}
	raw := s.prefs.StringWithFallback(s.key, "")
	if raw == "" {
		return
	}
	saved := make(map[string]Update)
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		log.Printf("[PROPS] Ignoring saved properties under %q: %v", s.key, err)
		return
	}
	for tool, u := range saved {
		def, ok := Default(tool)
		if !ok {
			continue
		}
		s.properties[tool] = u.Apply(def)
	}
}

// Get returns the current properties for tool.
func (s *Store) Get(tool string) (Properties, bool) {
	p, ok := s.properties[tool]
	if !ok {
		return Default(tool)
	}
	return p, true
}

// All returns a copy of the whole map.
func (s *Store) All() map[string]Properties {
	out := make(map[string]Properties, len(s.properties))
	for k, v := range s.properties {
		out[k] = v
	}
	return out
}

// Update merges u over the tool's current properties and persists the map.
func (s *Store) Update(tool string, u Update) (Properties, error) {
	current, ok := s.Get(tool)
	if !ok {
		return Properties{}, fmt.Errorf("update %q: %w", tool, ErrNoProperties)
	}
	next := u.Apply(current)
	s.properties[tool] = next
	s.save()
	return next, nil
}

// Reset restores the built-in defaults for one tool.
func (s *Store) Reset(tool string) error {
	def, ok := Default(tool)
	if !ok {
		return fmt.Errorf("reset %q: %w", tool, ErrNoProperties)
	}
	s.properties[tool] = def
	s.save()
	return nil
}

// ResetAll restores the built-in defaults for every tool.
func (s *Store) ResetAll() {
	s.properties = buildDefaults()
	s.save()
}

// Style snapshots the tool's properties into the style a new shape carries.
func (s *Store) Style(tool string) state.Style {
	p, _ := s.Get(tool)
	return state.Style{
		Stroke:       p.StrokeColor,
		Fill:         p.BackgroundColor,
		StrokeWidth:  p.StrokeWidth,
		CornerRadius: p.CornerRadius,
		Opacity:      p.Opacity,
	}
}

func (s *Store) save() {
	if s.prefs == nil {
		return
	}
	data, err := json.Marshal(s.properties)
	if err != nil {
		log.Printf("[PROPS] Failed to encode properties: %v", err)
		return
	}
	s.prefs.SetString(s.key, string(data))
}

func buildDefaults() map[string]Properties {
	m := make(map[string]Properties, len(Tools))
	for _, t := range Tools {
		m[t], _ = Default(t)
	}
	return m
}
