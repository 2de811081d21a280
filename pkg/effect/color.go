package effect

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses an SVG color name such as "tomato", or a hex color in
// the form "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseHex(hex string) (color.RGBA, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: want 6 or 8 digits", "#"+hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", "#"+hex, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
