package out

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"lectrack/internal/modules/records/domain"
	recordsout "lectrack/internal/modules/records/port/out"
	apperrors "lectrack/internal/platform/errors"
)

type CSVExporter struct{}

func NewCSVExporter() recordsout.Exporter {
	return CSVExporter{}
}

func (CSVExporter) Export(_ context.Context, path string, records []domain.Record) (int64, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create export dir: %w: %w", apperrors.ErrIO, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create export file: %w: %w", apperrors.ErrIO, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(domain.Columns); err != nil {
		return 0, fmt.Errorf("write export header: %w: %w", apperrors.ErrIO, err)
	}
	for _, record := range records {
		if err := w.Write(record.Values()); err != nil {
			return 0, fmt.Errorf("write export row: %w: %w", apperrors.ErrIO, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("flush export: %w: %w", apperrors.ErrIO, err)
	}
	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat export: %w: %w", apperrors.ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close export: %w: %w", apperrors.ErrIO, err)
	}
	return info.Size(), nil
}
