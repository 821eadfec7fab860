// Package store holds the datasets decoded during one session.
package store

import (
	"errors"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// ErrNotFound indicates no dataset has the requested identity.
var ErrNotFound = errors.New("dataset not found")

// DatasetStore is an ordered collection of datasets with a selection pointer.
// It has a single writer and is not safe for concurrent use.
type DatasetStore struct {
	datasets []*models.Dataset
	selected *models.Dataset
}

// New creates an empty store with nothing selected.
func New() *DatasetStore {
	return &DatasetStore{}
}

// Add appends ds and selects it. Duplicate filenames are kept.
func (s *DatasetStore) Add(ds *models.Dataset) {
	s.datasets = append(s.datasets, ds)
	s.selected = ds
}

// Select moves the selection to the dataset with the given ID.
func (s *DatasetStore) Select(id string) error {
	ds, err := s.Get(id)
	if err != nil {
		return err
	}
	s.selected = ds
	return nil
}

// SelectFilename selects the first dataset, in insertion order, with filename.
func (s *DatasetStore) SelectFilename(filename string) error {
	for _, ds := range s.datasets {
		if ds.Filename == filename {
			s.selected = ds
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the dataset with the given ID. Removing the selected
// dataset leaves nothing selected.
func (s *DatasetStore) Remove(id string) error {
	for i, ds := range s.datasets {
		if ds.ID != id {
			continue
		}
		s.datasets = append(s.datasets[:i], s.datasets[i+1:]...)
		if s.selected == ds {
			s.selected = nil
		}
		return nil
	}
	return ErrNotFound
}

// Selected returns the selected dataset, or nil.
func (s *DatasetStore) Selected() *models.Dataset {
	return s.selected
}

// Get returns the dataset with the given ID.
func (s *DatasetStore) Get(id string) (*models.Dataset, error) {
	for _, ds := range s.datasets {
		if ds.ID == id {
			return ds, nil
		}
	}
	return nil, ErrNotFound
}

// List returns the datasets in insertion order.
func (s *DatasetStore) List() []*models.Dataset {
	out := make([]*models.Dataset, len(s.datasets))
	copy(out, s.datasets)
	return out
}

// Len returns the number of datasets.
func (s *DatasetStore) Len() int {
	return len(s.datasets)
}
