package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Document is an opaque task-board JSON value. The board is owned by tooling
// outside this repository; nothing here validates or merges its contents.
type Document struct {
	value any
}

// Parse decodes a single JSON value. Numbers are kept as json.Number so a
// re-encode reproduces the staged numerals verbatim.
func Parse(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return Document{}, fmt.Errorf("parse board document: %w", err)
	}
	if dec.More() {
		return Document{}, fmt.Errorf("parse board document: trailing data after JSON value")
	}
	return Document{value: value}, nil
}

// Load reads and parses the staged board file.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("load board document (%s): %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Value exposes the decoded document.
func (d Document) Value() any {
	return d.value
}

// EntryCount is the number of top-level entries: array length for the
// canonical array-shaped board, key count for an object, 1 for anything else.
func (d Document) EntryCount() int {
	switch v := d.value.(type) {
	case []any:
		return len(v)
	case map[string]any:
		return len(v)
	default:
		return 1
	}
}

// Encode renders the document with two-space indentation and literal
// non-ASCII characters, matching the board file's established format.
func (d Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d.value); err != nil {
		return nil, fmt.Errorf("encode board document: %w", err)
	}
	return buf.Bytes(), nil
}

// Sync copies the staged document onto the board file, fully overwriting any
// prior content. Concurrent writers are last-write-wins; the board format
// offers no locking. Returns the top-level entry count written.
func Sync(stagingPath string, boardPath string) (int, error) {
	doc, err := Load(stagingPath)
	if err != nil {
		return 0, err
	}
	data, err := doc.Encode()
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(boardPath), 0o755); err != nil {
		return 0, fmt.Errorf("create board directory: %w", err)
	}
	if err := os.WriteFile(boardPath, data, 0o644); err != nil {
		return 0, fmt.Errorf("write board file (%s): %w", boardPath, err)
	}
	return doc.EntryCount(), nil
}
