package words

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	// ErrResourceMissing means the dataset location does not exist or cannot be reached.
	ErrResourceMissing = errors.New("word dataset missing")
	// ErrResourceMalformed means the dataset exists but is not a JSON array of entries.
	ErrResourceMalformed = errors.New("word dataset malformed")
)

// Source reads the raw entries of a dataset.
type Source interface {
	ReadEntries(ctx context.Context) ([]Entry, error)
	// Describe names the source for diagnostics (a path, a table).
	Describe() string
}

// FileSource reads a UTF-8 JSON array of entries from Path.
type FileSource struct {
	Path string
}

func (s FileSource) Describe() string { return s.Path }

// ReadEntries reads and decodes the file. Errors wrap ErrResourceMissing or ErrResourceMalformed.
func (s FileSource) ReadEntries(_ context.Context) ([]Entry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found", ErrResourceMissing, s.Path)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrResourceMissing, s.Path, err)
	}
	entries, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return entries, nil
}

// Decode parses a JSON array of entries. A top-level null, a non-array value
// or a null element is malformed.
func Decode(data []byte) ([]Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: top-level value is null", ErrResourceMalformed)
	}
	var raw []*Entry
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceMalformed, err)
	}
	entries := make([]Entry, 0, len(raw))
	for i, e := range raw {
		if e == nil {
			return nil, fmt.Errorf("%w: entry %d is null", ErrResourceMalformed, i)
		}
		entries = append(entries, *e)
	}
	return entries, nil
}
