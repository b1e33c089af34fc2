// Package palette turns human-readable color specs into canvas colors.
package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sixtyxsix/brandgen/internal/canvas"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for specs that are neither hex nor a known
// color name.
var ErrInvalidColor = errors.New("invalid color")

// Parse accepts "#RRGGBB", "RRGGBB", "#RGB" or an SVG 1.1 color name such
// as "teal". Matching is case-insensitive.
func Parse(s string) (canvas.Color, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[spec]; ok {
		return canvas.Color{R: c.R, G: c.G, B: c.B}, nil
	}

	hex := strings.TrimPrefix(spec, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return canvas.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return canvas.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return canvas.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParse is like Parse but panics on error. Use it for constants only.
func MustParse(s string) canvas.Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb".
func Hex(c canvas.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
