// Package output serializes datasets, series and chart records.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	// FormatJSON encodes as JSON.
	FormatJSON Format = "json"
	// FormatYAML encodes as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json or yaml)", name)
	}
}

// Encode serializes v in the given format.
func Encode(v any, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatYAML:
		return ToYAML(v)
	default:
		return ToJSON(v, pretty)
	}
}

// ToJSON serializes v to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToYAML serializes v to block-style YAML. The document is derived from
// the JSON encoding, so keys, order and custom marshalers match ToJSON.
func ToYAML(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	blockStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// blockStyle clears the flow and quoting styles JSON input leaves on nodes.
// The encoder still quotes scalars that would otherwise change type.
func blockStyle(n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode, yaml.ScalarNode:
		n.Style = 0
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}
