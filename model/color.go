package model

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is an opaque 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// NewRGB returns a pointer to a colour, convenient for optional fields.
func NewRGB(r, g, b uint8) *RGB {
	return &RGB{R: r, G: g, B: b}
}

// Hex returns the colour as six upper-case hex digits, e.g. "1E293B".
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA converts the colour to an opaque image/color value.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return "#" + c.Hex()
}

// ParseHex parses "RRGGBB" or "#RRGGBB".
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
