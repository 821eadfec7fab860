package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// DefaultTitle is the title of a fresh configuration.
const DefaultTitle = "Chart Title"

var (
	// ErrUnknownKind indicates a chart kind outside the supported set.
	ErrUnknownKind = errors.New("unknown chart kind")

	// ErrStaleAxis indicates an axis names a column the dataset lacks.
	ErrStaleAxis = errors.New("axis column not in dataset")
)

// ParseKind parses a chart kind name, case-insensitively.
func ParseKind(name string) (models.ChartKind, error) {
	k := models.ChartKind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range models.ChartKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Configuration is the mutable chart configuration for one session.
// Setters never validate against a dataset and never clear other fields.
type Configuration struct {
	cfg models.ChartConfig
}

// NewConfiguration returns a bar configuration with unset axes.
func NewConfiguration() *Configuration {
	return &Configuration{
		cfg: models.ChartConfig{
			Kind:  models.ChartBar,
			Title: DefaultTitle,
		},
	}
}

// SetKind changes the chart kind. Axes are kept.
func (c *Configuration) SetKind(kind models.ChartKind) {
	c.cfg.Kind = kind
}

// SetKindName parses and sets the chart kind.
func (c *Configuration) SetKindName(name string) error {
	kind, err := ParseKind(name)
	if err != nil {
		return err
	}
	c.SetKind(kind)
	return nil
}

// SetXAxis sets the x-axis column. An empty name unsets it.
func (c *Configuration) SetXAxis(column string) {
	c.cfg.XAxis = column
}

// SetYAxis sets the y-axis column. An empty name unsets it.
func (c *Configuration) SetYAxis(column string) {
	c.cfg.YAxis = column
}

// SetTitle sets the chart title.
func (c *Configuration) SetTitle(title string) {
	c.cfg.Title = title
}

// Snapshot returns a copy of the current configuration.
func (c *Configuration) Snapshot() models.ChartConfig {
	return c.cfg
}

// Complete reports whether both axes are set.
func (c *Configuration) Complete() bool {
	return c.cfg.XAxis != "" && c.cfg.YAxis != ""
}

// ApplyDefaults assigns the first two columns to x and y and derives a
// title from them. Fewer than two columns leaves the configuration as is.
func (c *Configuration) ApplyDefaults(columns []string) {
	if len(columns) < 2 {
		return
	}
	c.cfg.XAxis = columns[0]
	c.cfg.YAxis = columns[1]
	c.cfg.Title = fmt.Sprintf("%s by %s", columns[1], columns[0])
}

// Validate checks that every set axis names one of columns.
// Callers use it after switching datasets; Build does not.
func (c *Configuration) Validate(columns []string) error {
	has := func(name string) bool {
		for _, col := range columns {
			if col == name {
				return true
			}
		}
		return false
	}
	if c.cfg.XAxis != "" && !has(c.cfg.XAxis) {
		return fmt.Errorf("%w: x axis %q", ErrStaleAxis, c.cfg.XAxis)
	}
	if c.cfg.YAxis != "" && !has(c.cfg.YAxis) {
		return fmt.Errorf("%w: y axis %q", ErrStaleAxis, c.cfg.YAxis)
	}
	return nil
}
