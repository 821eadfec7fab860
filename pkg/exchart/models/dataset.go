// Package models defines data structures for spreadsheet datasets and chart series.
package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Record is a single data row keyed by header name.
// Keys preserves the order in which cells were read, left to right.
type Record struct {
	// Keys lists the header names present in this row, in column order.
	Keys []string
	// Values maps header name to a raw cell value (string, int64, float64 or bool).
	Values map[string]any
}

// NewRecord creates an empty record.
func NewRecord() Record {
	return Record{Values: make(map[string]any)}
}

// Set stores a value, appending key to Keys on first use.
func (r *Record) Set(key string, value any) {
	if r.Values == nil {
		r.Values = make(map[string]any)
	}
	if _, ok := r.Values[key]; !ok {
		r.Keys = append(r.Keys, key)
	}
	r.Values[key] = value
}

// Get returns the raw value for key. Missing keys yield (nil, false).
func (r Record) Get(key string) (any, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// Len returns the number of keys present in the record.
func (r Record) Len() int {
	return len(r.Keys)
}

// MarshalJSON encodes the record as an object with keys in insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.Values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Dataset is one decoded spreadsheet. It is never mutated after decoding.
type Dataset struct {
	// ID uniquely identifies the dataset within a session.
	ID string `json:"id"`
	// Filename is the display name of the uploaded file. Not guaranteed unique.
	Filename string `json:"filename"`
	// Rows contains the data rows below the header row.
	Rows []Record `json:"rows"`
	// Columns lists the keys of the first row, in that row's order.
	Columns []string `json:"columns"`
	// UploadedAt is the ingestion timestamp.
	UploadedAt time.Time `json:"uploaded_at"`
	// FileSize is the size of the raw input in bytes.
	FileSize int64 `json:"file_size"`
}

// HasColumn reports whether name is one of the dataset's columns.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}
