package in

import (
	"context"

	"lectrack/internal/modules/records/dto"
)

type Usecase interface {
	Append(ctx context.Context, input dto.AppendInput) (dto.RecordOutput, error)
	ListAll(ctx context.Context) ([]dto.RecordOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
