// Package ui renders command results in the selected output format:
// tables and styled summaries for terminals, plain lines for scripts,
// and JSON or YAML for machines.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format, resolving FormatAuto
// from output when it is a file
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return newTerminal(output, DefaultStyles()), nil
	case FormatText:
		return newText(output), nil
	case FormatJSON:
		return newStructured(output, encodeJSON), nil
	case FormatYAML:
		return newStructured(output, encodeYAML), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// Mapping is a labelled old -> new table, such as a lookup result or
// a generated identifier map. It encodes as a plain object.
type Mapping struct {
	From  string
	To    string
	Pairs map[string]string
}

// Keys returns the mapping keys sorted
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m.Pairs))
	for k := range m.Pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON encodes the pairs only
func (m Mapping) MarshalJSON() ([]byte, error) {
	if m.Pairs == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m.Pairs)
}

// MarshalYAML encodes the pairs only
func (m Mapping) MarshalYAML() (interface{}, error) {
	if m.Pairs == nil {
		return map[string]string{}, nil
	}
	return m.Pairs, nil
}
