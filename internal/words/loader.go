package words

import (
	"context"
	"errors"
	"log/slog"
)

// Load reads src once and returns its Dataset. It never fails: a missing or
// malformed resource is logged and yields an empty Dataset.
func Load(ctx context.Context, src Source, logger *slog.Logger) *Dataset {
	if logger == nil {
		logger = slog.Default()
	}
	name := src.Describe()

	entries, err := src.ReadEntries(ctx)
	if err != nil {
		event := "words.resource_missing"
		if errors.Is(err, ErrResourceMalformed) {
			event = "words.resource_malformed"
		}
		logger.Error(event, slog.String("source", name), slog.String("error", err.Error()))
		return NewDataset(nil)
	}

	ds := NewDataset(entries)
	logger.Info("words.loaded", slog.Int("count", ds.Len()), slog.String("source", name))
	if v := ds.Violations(); len(v) > 0 {
		logger.Warn("words.invariant_violations", slog.Int("count", len(v)), slog.String("source", name))
	}
	return ds
}

// LoadFile is Load over a FileSource.
func LoadFile(path string, logger *slog.Logger) *Dataset {
	return Load(context.Background(), FileSource{Path: path}, logger)
}
