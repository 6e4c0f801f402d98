// Package backup implements the portable import/export document format.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/listoapp/listo/internal/model"
)

// Document is the backup wire format. Every key is optional on import: an
// absent key leaves the corresponding collection untouched. Export always
// writes all four. Pointer fields distinguish "absent" from "present but
// empty".
type Document struct {
	Todos    *[]model.Task   `json:"todos,omitempty"`
	Activity *model.Activity `json:"activity,omitempty"`
	Boards   *[]model.Board  `json:"boards,omitempty"`
	Settings *model.Settings `json:"settings,omitempty"`
}

// Encode serializes a document as pretty-printed JSON.
func Encode(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return data, nil
}

// Decode parses a backup document. Parsing happens in full before anything
// is applied, so a malformed document never partially mutates state.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decoding backup: %w", err)
	}
	return doc, nil
}

// DefaultFilename returns the date-stamped backup file name for now.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("listo-backup-%s.json", now.Format("2006-01-02"))
}

// WriteFile encodes doc and writes it to path.
func WriteFile(path string, doc Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing backup to %s: %w", path, err)
	}
	return nil
}

// ReadFile reads and decodes a backup document from path.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading backup from %s: %w", path, err)
	}
	return Decode(data)
}
