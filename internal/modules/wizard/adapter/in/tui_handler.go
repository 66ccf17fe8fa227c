package in

import (
	"context"

	"lectrack/internal/modules/wizard/dto"
	wizardin "lectrack/internal/modules/wizard/port/in"
)

type TUIHandler struct {
	usecase wizardin.Usecase
}

func NewTUIHandler(usecase wizardin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) State(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.State(ctx)
}

func (h TUIHandler) SelectGroup(ctx context.Context, group string) (dto.StateOutput, error) {
	return h.usecase.SelectGroup(ctx, group)
}

func (h TUIHandler) MarkArrived(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.MarkArrived(ctx)
}

func (h TUIHandler) StartLecture(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.StartLecture(ctx)
}

func (h TUIHandler) StartBreak(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.StartBreak(ctx)
}

func (h TUIHandler) SkipBreak(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.SkipBreak(ctx)
}

func (h TUIHandler) EndBreak(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.EndBreak(ctx)
}

func (h TUIHandler) SetNotes(ctx context.Context, notes string) (dto.StateOutput, error) {
	return h.usecase.SetNotes(ctx, notes)
}

func (h TUIHandler) EndLecture(ctx context.Context) (dto.EndLectureOutput, error) {
	return h.usecase.EndLecture(ctx)
}

func (h TUIHandler) OpenReport(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.OpenReport(ctx)
}

func (h TUIHandler) CloseReport(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.CloseReport(ctx)
}

func (h TUIHandler) Reset(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Reset(ctx)
}
