// Package jsonfile implements service.Service over two JSON files: an
// ordered item list and an insertion-ordered pattern map. Every mutation
// rewrites the whole backing file before returning.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// readFile returns the file contents, or ok=false when the file is missing
// or unreadable. Callers treat that the same as an empty store.
func readFile(path string) ([]byte, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

// writeFile rewrites the whole file in place.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// marshalIndent renders v with 2-space indentation and without HTML
// escaping, so Unicode text round-trips literally.
func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// encodeString renders a single JSON string literal without HTML escaping.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
