// Package chart holds chart configuration state and the series builder.
package chart

import "github.com/ukaji3/exchart-go/pkg/exchart/models"

// Palette is an immutable ordered color sequence.
type Palette struct {
	colors []models.Color
}

// DefaultPalette is the six-color fill palette.
var DefaultPalette = NewPalette(
	models.Color{R: 59, G: 130, B: 246, A: 0.8},
	models.Color{R: 139, G: 92, B: 246, A: 0.8},
	models.Color{R: 16, G: 185, B: 129, A: 0.8},
	models.Color{R: 245, G: 158, B: 11, A: 0.8},
	models.Color{R: 239, G: 68, B: 68, A: 0.8},
	models.Color{R: 168, G: 85, B: 247, A: 0.8},
)

// NewPalette copies colors into a new palette.
func NewPalette(colors ...models.Color) Palette {
	c := make([]models.Color, len(colors))
	copy(c, colors)
	return Palette{colors: c}
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p.colors)
}

// First returns the first color.
func (p Palette) First() models.Color {
	return p.At(0)
}

// At returns the color for index i, cycling with i mod Len.
// More items than colors means colors repeat.
func (p Palette) At(i int) models.Color {
	if len(p.colors) == 0 {
		return models.Color{}
	}
	i %= len(p.colors)
	if i < 0 {
		i += len(p.colors)
	}
	return p.colors[i]
}

// Cycle returns n colors assigned by index mod Len.
func (p Palette) Cycle(n int) []models.Color {
	out := make([]models.Color, n)
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}

// Borders derives border colors by forcing full opacity.
func Borders(fills []models.Color) []models.Color {
	out := make([]models.Color, len(fills))
	for i, c := range fills {
		out[i] = c.Opaque()
	}
	return out
}
