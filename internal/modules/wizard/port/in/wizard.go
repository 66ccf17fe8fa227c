package in

import (
	"context"

	"lectrack/internal/modules/wizard/dto"
)

type Usecase interface {
	State(ctx context.Context) (dto.StateOutput, error)
	SelectGroup(ctx context.Context, group string) (dto.StateOutput, error)
	MarkArrived(ctx context.Context) (dto.StateOutput, error)
	StartLecture(ctx context.Context) (dto.StateOutput, error)
	StartBreak(ctx context.Context) (dto.StateOutput, error)
	SkipBreak(ctx context.Context) (dto.StateOutput, error)
	EndBreak(ctx context.Context) (dto.StateOutput, error)
	SetNotes(ctx context.Context, notes string) (dto.StateOutput, error)
	EndLecture(ctx context.Context) (dto.EndLectureOutput, error)
	OpenReport(ctx context.Context) (dto.StateOutput, error)
	CloseReport(ctx context.Context) (dto.StateOutput, error)
	Reset(ctx context.Context) (dto.StateOutput, error)
}
