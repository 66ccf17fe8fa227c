package usecase

import (
	"context"
	"time"

	"lectrack/internal/modules/wizard/domain"
	"lectrack/internal/modules/wizard/dto"
	wizardin "lectrack/internal/modules/wizard/port/in"
	"lectrack/internal/modules/wizard/service"
	"lectrack/internal/platform/timefmt"
)

type Interactor struct {
	svc *service.WizardService
}

func NewInteractor(svc *service.WizardService) wizardin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) State(context.Context) (dto.StateOutput, error) {
	return toState(i.svc.Snapshot()), nil
}

func (i *Interactor) SelectGroup(_ context.Context, group string) (dto.StateOutput, error) {
	return stateOrErr(i.svc.SelectGroup(group))
}

func (i *Interactor) MarkArrived(context.Context) (dto.StateOutput, error) {
	return stateOrErr(i.svc.MarkArrived())
}

func (i *Interactor) StartLecture(context.Context) (dto.StateOutput, error) {
	return stateOrErr(i.svc.StartLecture())
}

func (i *Interactor) StartBreak(context.Context) (dto.StateOutput, error) {
	return stateOrErr(i.svc.StartBreak())
}

func (i *Interactor) SkipBreak(context.Context) (dto.StateOutput, error) {
	return stateOrErr(i.svc.SkipBreak())
}

func (i *Interactor) EndBreak(context.Context) (dto.StateOutput, error) {
	return stateOrErr(i.svc.EndBreak())
}

func (i *Interactor) SetNotes(_ context.Context, notes string) (dto.StateOutput, error) {
	return stateOrErr(i.svc.SetNotes(notes))
}

func (i *Interactor) EndLecture(ctx context.Context) (dto.EndLectureOutput, error) {
	summary, snap, err := i.svc.EndLecture(ctx)
	if err != nil {
		return dto.EndLectureOutput{State: toState(snap)}, err
	}
	out := dto.EndLectureOutput{
		Group:           summary.Group,
		Start:           timefmt.Stamp(summary.Started),
		LectureEnd:      timefmt.Stamp(summary.Ended),
		BreakDuration:   timefmt.ZeroElapsed,
		LectureDuration: timefmt.Elapsed(summary.LectureDuration),
		State:           toState(snap),
	}
	if summary.HasBreak {
		out.BreakDuration = timefmt.Elapsed(summary.BreakDuration)
	}
	return out, nil
}

func (i *Interactor) OpenReport(context.Context) (dto.StateOutput, error) {
	return stateOrErr(i.svc.OpenReport())
}

func (i *Interactor) CloseReport(context.Context) (dto.StateOutput, error) {
	return stateOrErr(i.svc.CloseReport())
}

func (i *Interactor) Reset(context.Context) (dto.StateOutput, error) {
	return toState(i.svc.Reset()), nil
}

// stateOrErr keeps the current state alongside a rejected action so callers
// can re-render without another round trip.
func stateOrErr(snap service.Snapshot, err error) (dto.StateOutput, error) {
	return toState(snap), err
}

func toState(snap service.Snapshot) dto.StateOutput {
	draft := snap.Draft
	actions := make([]string, 0, len(snap.Actions))
	for _, a := range snap.Actions {
		actions = append(actions, string(a))
	}
	return dto.StateOutput{
		Step:            snap.Step.String(),
		Groups:          snap.Groups,
		Group:           draft.Group(),
		Arrived:         stamp(draft.Time(domain.FieldArrived)),
		Started:         stamp(draft.Time(domain.FieldStarted)),
		BreakStarted:    stamp(draft.Time(domain.FieldBreakStarted)),
		BreakEnded:      stamp(draft.Time(domain.FieldBreakEnded)),
		BreakInProgress: snap.BreakInProgress,
		Notes:           draft.Notes(),
		Actions:         actions,
	}
}

func stamp(t time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return timefmt.Stamp(t)
}
