package models

import "encoding/json"

// Point is a scatter coordinate pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ColorSet is either a single color or one color per data item.
type ColorSet struct {
	// Colors holds the color(s). A single color when PerItem is false.
	Colors []Color
	// PerItem marks a per-slice color list.
	PerItem bool
}

// SingleColor returns a ColorSet holding one color.
func SingleColor(c Color) ColorSet {
	return ColorSet{Colors: []Color{c}}
}

// At returns the color for item i.
func (cs ColorSet) At(i int) Color {
	if len(cs.Colors) == 0 {
		return Color{}
	}
	if !cs.PerItem {
		return cs.Colors[0]
	}
	return cs.Colors[i%len(cs.Colors)]
}

// MarshalJSON encodes a single color as a string and a per-item set as an array.
func (cs ColorSet) MarshalJSON() ([]byte, error) {
	if cs.PerItem {
		if cs.Colors == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(cs.Colors)
	}
	return json.Marshal(cs.At(0))
}

// SeriesDataset is one dataset entry of a Series.
// Exactly one of Values and Points is used.
type SeriesDataset struct {
	// Label is the legend label (omitted for pie).
	Label string
	// Values holds numeric data for bar, line and pie.
	Values []float64
	// Points holds coordinate pairs for scatter.
	Points []Point
	// BackgroundColor is the fill color(s).
	BackgroundColor ColorSet
	// BorderColor is the border color(s).
	BorderColor ColorSet
	// BorderWidth is the border width in pixels; 0 omits it.
	BorderWidth int
	// Fill toggles area fill; nil omits it.
	Fill *bool
}

// IsScatter reports whether the dataset carries coordinate pairs.
func (d SeriesDataset) IsScatter() bool {
	return d.Points != nil
}

// MarshalJSON encodes the dataset with a single "data" field.
func (d SeriesDataset) MarshalJSON() ([]byte, error) {
	type wire struct {
		Label           string   `json:"label,omitempty"`
		Data            any      `json:"data"`
		BackgroundColor ColorSet `json:"backgroundColor"`
		BorderColor     ColorSet `json:"borderColor"`
		BorderWidth     int      `json:"borderWidth,omitempty"`
		Fill            *bool    `json:"fill,omitempty"`
	}
	w := wire{
		Label:           d.Label,
		BackgroundColor: d.BackgroundColor,
		BorderColor:     d.BorderColor,
		BorderWidth:     d.BorderWidth,
		Fill:            d.Fill,
	}
	switch {
	case d.Points != nil:
		w.Data = d.Points
	case d.Values != nil:
		w.Data = d.Values
	default:
		w.Data = []float64{}
	}
	return json.Marshal(w)
}

// Series is the renderer-ready output of the series builder.
type Series struct {
	// Labels holds raw x-axis values; nil for scatter.
	// Missing cells appear as nil entries.
	Labels []any
	// Datasets holds the dataset entries (always one for built series).
	Datasets []SeriesDataset
}

// MarshalJSON omits labels only when the series has none (scatter).
func (s Series) MarshalJSON() ([]byte, error) {
	type wire struct {
		Labels   *[]any          `json:"labels,omitempty"`
		Datasets []SeriesDataset `json:"datasets"`
	}
	w := wire{Datasets: s.Datasets}
	if s.Labels != nil {
		labels := s.Labels
		w.Labels = &labels
	}
	if w.Datasets == nil {
		w.Datasets = []SeriesDataset{}
	}
	return json.Marshal(w)
}
