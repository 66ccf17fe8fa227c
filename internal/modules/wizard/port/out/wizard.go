package out

import (
	"context"

	"lectrack/internal/modules/wizard/domain"
)

// RecordSink persists a completed lecture.
type RecordSink interface {
	Append(ctx context.Context, summary domain.Summary) error
}
