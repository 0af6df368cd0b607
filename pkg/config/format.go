package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format selects which decoder a document is parsed with.
type Format int

const (
	// FormatYAML parses YAML (and, being a superset, plain JSON).
	FormatYAML Format = iota
	// FormatJSON parses strict JSON.
	FormatJSON
)

// formatFromExt sniffs a Format from a file extension: ".json" selects
// JSON, anything else falls back to YAML.
func formatFromExt(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

func readDocument(path string) ([]byte, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, formatFromExt(path), nil
}

func decodeJSONStrict(data []byte, out interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}
