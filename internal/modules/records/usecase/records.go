package usecase

import (
	"context"

	"lectrack/internal/modules/records/domain"
	"lectrack/internal/modules/records/dto"
	recordsin "lectrack/internal/modules/records/port/in"
	"lectrack/internal/modules/records/service"
)

type Interactor struct {
	svc *service.RecordService
}

func NewInteractor(svc *service.RecordService) recordsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Append(ctx context.Context, input dto.AppendInput) (dto.RecordOutput, error) {
	record := domain.Record{
		GroupCode:       input.GroupCode,
		Arrived:         input.Arrived,
		Start:           input.Start,
		BreakStart:      input.BreakStart,
		BreakEnd:        input.BreakEnd,
		LectureEnd:      input.LectureEnd,
		BreakDuration:   input.BreakDuration,
		LectureDuration: input.LectureDuration,
		Notes:           input.Notes,
	}
	if err := i.svc.Append(ctx, record); err != nil {
		return dto.RecordOutput{}, err
	}
	return toOutput(record), nil
}

func (i *Interactor) ListAll(ctx context.Context) ([]dto.RecordOutput, error) {
	records, err := i.svc.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecordOutput, 0, len(records))
	for _, record := range records {
		out = append(out, toOutput(record))
	}
	return out, nil
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	path, count, written, err := i.svc.Export(ctx, input.Path)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: path, Records: count, Bytes: written}, nil
}

func toOutput(record domain.Record) dto.RecordOutput {
	return dto.RecordOutput{
		GroupCode:       record.GroupCode,
		Arrived:         record.Arrived,
		Start:           record.Start,
		BreakStart:      record.BreakStart,
		BreakEnd:        record.BreakEnd,
		LectureEnd:      record.LectureEnd,
		BreakDuration:   record.BreakDuration,
		LectureDuration: record.LectureDuration,
		Notes:           record.Notes,
	}
}
