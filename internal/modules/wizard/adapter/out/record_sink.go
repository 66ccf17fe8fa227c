package out

import (
	"context"

	recordsdto "lectrack/internal/modules/records/dto"
	recordsin "lectrack/internal/modules/records/port/in"
	"lectrack/internal/modules/wizard/domain"
	wizardout "lectrack/internal/modules/wizard/port/out"
	"lectrack/internal/platform/timefmt"
)

// RecordsSinkAdapter hands completed lectures to the records module.
type RecordsSinkAdapter struct {
	records recordsin.Usecase
}

func NewRecordsSinkAdapter(records recordsin.Usecase) wizardout.RecordSink {
	return &RecordsSinkAdapter{records: records}
}

func (a *RecordsSinkAdapter) Append(ctx context.Context, summary domain.Summary) error {
	input := recordsdto.AppendInput{
		GroupCode:       summary.Group,
		Arrived:         timefmt.Stamp(summary.Arrived),
		Start:           timefmt.Stamp(summary.Started),
		LectureEnd:      timefmt.Stamp(summary.Ended),
		BreakDuration:   timefmt.ZeroElapsed,
		LectureDuration: timefmt.Elapsed(summary.LectureDuration),
		Notes:           summary.Notes,
	}
	if summary.HasBreak {
		input.BreakStart = timefmt.Stamp(summary.BreakStarted)
		input.BreakEnd = timefmt.Stamp(summary.BreakEnded)
		input.BreakDuration = timefmt.Elapsed(summary.BreakDuration)
	}
	_, err := a.records.Append(ctx, input)
	return err
}
