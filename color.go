package wikifmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an RGBA color as written in rich-text color tags.
type Color struct {
	R, G, B, A uint8
}

// ParseColor parses a hex color: #RGB, #RRGGBB or #RRGGBBAA. The leading
// '#' is optional.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// String renders the color as CSS: "#rrggbb" when opaque, rgba() otherwise.
func (c Color) String() string {
	if c.A == math.MaxUint8 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	alpha := roundTo(float64(c.A)/math.MaxUint8, 2)
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, formatDecimal(alpha))
}

// Hex renders the color as "#rrggbbaa".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
