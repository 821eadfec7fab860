package models

import (
	"fmt"
	"strconv"
)

// Color is an rgba color. A is the opacity channel in [0, 1].
type Color struct {
	R uint8
	G uint8
	B uint8
	A float64
}

// Opaque returns the same color with the opacity channel forced to 1.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// String encodes the color as "rgba(r, g, b, a)".
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
