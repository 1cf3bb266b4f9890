package ui

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// parseColor understands #rgb, #rrggbb, the SVG colour names and "transparent".
// The result's alpha is scaled by opacity. ok is false for an empty or
// unparsable string, or a fully transparent colour.
func parseColor(s string, opacity float32) (c color.NRGBA, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "transparent":
		return color.NRGBA{}, false
	case strings.HasPrefix(s, "#"):
		c, ok = parseHex(s[1:])
	default:
		c, ok = namedColor(s)
	}
	if !ok {
		return color.NRGBA{}, false
	}
	c.A = uint8(float32(c.A) * clamp01(opacity))
	return c, true
}

func namedColor(name string) (color.NRGBA, bool) {
	rgba, ok := colornames.Map[name]
	if !ok {
		return color.NRGBA{}, false
	}
	// Every named colour is opaque, so RGBA and NRGBA agree.
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}, true
}

func parseHex(h string) (color.NRGBA, bool) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
