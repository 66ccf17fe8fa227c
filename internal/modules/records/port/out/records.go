package out

import (
	"context"

	"lectrack/internal/modules/records/domain"
)

// RecordStore is the append-only lectures table.
type RecordStore interface {
	Initialize(ctx context.Context) error
	Insert(ctx context.Context, record domain.Record) error
	ListAll(ctx context.Context) ([]domain.Record, error)
	Close() error
}

// Exporter writes records to a delimited file at path, replacing it.
// It returns the number of bytes written.
type Exporter interface {
	Export(ctx context.Context, path string, records []domain.Record) (int64, error)
}
