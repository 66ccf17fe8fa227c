package in

import (
	"context"

	"lectrack/internal/modules/records/dto"
	recordsin "lectrack/internal/modules/records/port/in"
)

type CLIHandler struct {
	usecase recordsin.Usecase
}

func NewCLIHandler(usecase recordsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListAll(ctx context.Context) ([]dto.RecordOutput, error) {
	return h.usecase.ListAll(ctx)
}

func (h CLIHandler) Export(ctx context.Context, path string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Path: path})
}
