package exchart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ukaji3/exchart-go/internal/logger"
	"github.com/ukaji3/exchart-go/pkg/exchart/chart"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/ukaji3/exchart-go/pkg/exchart/parser"
	"github.com/ukaji3/exchart-go/pkg/exchart/store"
)

// Session is the state of one interactive session: the uploaded datasets,
// the chart configuration and the charts generated so far.
// Only uploads are guarded against re-entry; everything else has a single writer.
type Session struct {
	opts      Options
	store     *store.DatasetStore
	config    *chart.Configuration
	history   []models.ChartRecord
	uploading atomic.Bool
}

// NewSession creates an empty session.
func NewSession(opts Options) *Session {
	return &Session{
		opts:   opts,
		store:  store.New(),
		config: chart.NewConfiguration(),
	}
}

// Store returns the session's dataset store.
func (s *Session) Store() *store.DatasetStore {
	return s.store
}

// Config returns the session's chart configuration.
func (s *Session) Config() *chart.Configuration {
	return s.config
}

// Upload reads r to the end, decodes it and selects the new dataset.
// With at least two columns the configuration axes and title are reset to
// the first two columns. On error the store and configuration are unchanged.
func (s *Session) Upload(filename string, r io.Reader) (*models.Dataset, error) {
	if !s.uploading.CompareAndSwap(false, true) {
		return nil, ErrUploadInProgress
	}
	defer s.uploading.Store(false)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	ds, err := parser.Decode(filename, data)
	if err != nil {
		return nil, err
	}

	s.store.Add(ds)
	s.config.ApplyDefaults(ds.Columns)
	logger.Info("uploaded %s (%d rows, %d columns)", ds.Filename, len(ds.Rows), len(ds.Columns))

	return ds, nil
}

// UploadFile uploads the spreadsheet at path. Only supported extensions are accepted.
func (s *Session) UploadFile(path string) (*models.Dataset, error) {
	if !IsSupported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return s.Upload(filepath.Base(path), f)
}

// IsSupported reports whether path has an accepted spreadsheet extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range parser.SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Select selects a dataset by ID. The configuration is left untouched,
// so axes may now name columns the dataset lacks.
func (s *Session) Select(id string) error {
	if err := s.store.Select(id); err != nil {
		return err
	}
	logger.Info("selected %s", id)
	return nil
}

// Remove removes a dataset by ID along with the charts generated from it.
func (s *Session) Remove(id string) error {
	if err := s.store.Remove(id); err != nil {
		return err
	}

	kept := s.history[:0]
	for _, rec := range s.history {
		if rec.DatasetID != id {
			kept = append(kept, rec)
		}
	}
	s.history = kept
	return nil
}

// Series builds the series for the selected dataset and current configuration.
// It returns nil when nothing is selected or an axis is unset.
func (s *Session) Series() *models.Series {
	return chart.Build(s.store.Selected(), s.config.Snapshot())
}

// DisplayOptions returns the renderer options for the current configuration.
func (s *Session) DisplayOptions() models.DisplayOptions {
	opts := chart.DisplayOptionsFor(s.config.Snapshot())
	if s.opts.LegendPosition != "" {
		opts.Plugins.Legend.Position = s.opts.LegendPosition
	}
	return opts
}

// Generate freezes the current configuration into a chart record.
// The configuration stays editable for later regeneration.
func (s *Session) Generate() (*models.ChartRecord, error) {
	ds := s.store.Selected()
	if ds == nil {
		return nil, ErrNoSelection
	}
	cfg := s.config.Snapshot()
	series := chart.Build(ds, cfg)
	if series == nil {
		return nil, ErrConfigurationIncomplete
	}

	rec := models.ChartRecord{
		ID:        uuid.New().String(),
		DatasetID: ds.ID,
		Config:    cfg,
		Series:    series,
		Options:   s.DisplayOptions(),
		CreatedAt: time.Now(),
	}
	if s.opts.ShouldKeepHistory() {
		s.history = append(s.history, rec)
	}
	logger.Info("generated %s chart for %s (%s vs %s)", cfg.Kind, ds.Filename, cfg.XAxis, cfg.YAxis)

	return &rec, nil
}

// History returns the charts generated for a dataset, oldest first.
func (s *Session) History(datasetID string) []models.ChartRecord {
	var out []models.ChartRecord
	for _, rec := range s.history {
		if rec.DatasetID == datasetID {
			out = append(out, rec)
		}
	}
	return out
}
