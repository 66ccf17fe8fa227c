package domain_test

import (
	"errors"
	"slices"
	"testing"
	"time"

	"lectrack/internal/modules/wizard/domain"
	apperrors "lectrack/internal/platform/errors"
)

var (
	t1  = time.Date(2026, 2, 25, 9, 55, 0, 0, time.UTC)
	t2  = time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)
	t2a = time.Date(2026, 2, 25, 10, 40, 0, 0, time.UTC)
	t2b = time.Date(2026, 2, 25, 10, 55, 30, 0, time.UTC)
	t3  = time.Date(2026, 2, 25, 11, 45, 0, 0, time.UTC)
)

func newMachine(t *testing.T) *domain.Machine {
	t.Helper()
	m, err := domain.NewMachine([]string{"Group 1", "Group 2"})
	if err != nil {
		t.Fatalf("new machine: %v", err)
	}
	return m
}

func TestNewMachineRequiresGroups(t *testing.T) {
	t.Parallel()
	if _, err := domain.NewMachine(nil); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSkipBreakFlow(t *testing.T) {
	t.Parallel()
	m := newMachine(t)
	if err := m.MarkArrived(t1, "run-1"); err != nil {
		t.Fatalf("mark arrived: %v", err)
	}
	if m.Step() != domain.StepStartLecture {
		t.Fatalf("expected start_lecture, got %s", m.Step())
	}
	draft := m.Draft()
	if draft.Group() != "Group 1" {
		t.Fatalf("expected default group, got %q", draft.Group())
	}
	if err := m.StartLecture(t2); err != nil {
		t.Fatalf("start lecture: %v", err)
	}
	if err := m.SkipBreak(); err != nil {
		t.Fatalf("skip break: %v", err)
	}
	if err := m.SetNotes("ok"); err != nil {
		t.Fatalf("set notes: %v", err)
	}
	summary, err := m.EndLecture(t3)
	if err != nil {
		t.Fatalf("end lecture: %v", err)
	}
	if summary.HasBreak || summary.BreakDuration != 0 {
		t.Fatalf("skipped break must have no break, got %+v", summary)
	}
	if summary.LectureDuration != t3.Sub(t2) {
		t.Fatalf("unexpected lecture duration %v", summary.LectureDuration)
	}
	if summary.Notes != "ok" || summary.RunID != "run-1" || !summary.Arrived.Equal(t1) {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestBreakFlow(t *testing.T) {
	t.Parallel()
	m := newMachine(t)
	if err := m.SelectGroup("Group 2"); err != nil {
		t.Fatalf("select group: %v", err)
	}
	mustDo(t, m.MarkArrived(t1, "run-2"))
	mustDo(t, m.StartLecture(t2))
	mustDo(t, m.StartBreak(t2a))
	if m.Step() != domain.StepManageBreak || !m.BreakInProgress() {
		t.Fatalf("expected break in progress in manage_break")
	}
	if !slices.Contains(m.Actions(), domain.ActionEndBreak) || m.Can(domain.ActionSkipBreak) || m.Can(domain.ActionStartBreak) {
		t.Fatalf("only end break should be enabled during a break, got %v", m.Actions())
	}
	mustDo(t, m.EndBreak(t2b))
	summary, err := m.EndLecture(t3)
	if err != nil {
		t.Fatalf("end lecture: %v", err)
	}
	if summary.Group != "Group 2" || !summary.HasBreak {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.BreakDuration != t2b.Sub(t2a) {
		t.Fatalf("break duration %v, want %v", summary.BreakDuration, t2b.Sub(t2a))
	}
	if summary.LectureDuration != t3.Sub(t2) {
		t.Fatalf("lecture duration %v, want %v", summary.LectureDuration, t3.Sub(t2))
	}
}

func TestDisabledActionsLeaveStateUntouched(t *testing.T) {
	t.Parallel()
	m := newMachine(t)
	checks := []struct {
		name string
		run  func() error
	}{
		{"start lecture before arrival", func() error { return m.StartLecture(t2) }},
		{"end break without break", func() error { return m.EndBreak(t2) }},
		{"skip break in select", func() error { return m.SkipBreak() }},
		{"notes too early", func() error { return m.SetNotes("x") }},
		{"end lecture too early", func() error { _, err := m.EndLecture(t3); return err }},
		{"exit report not open", func() error { return m.CloseReport(false) }},
	}
	for _, c := range checks {
		if err := c.run(); !errors.Is(err, apperrors.ErrInvalidTransition) {
			t.Fatalf("%s: expected invalid transition, got %v", c.name, err)
		}
	}
	draft := m.Draft()
	if m.Step() != domain.StepSelectGroup || !draft.Empty() {
		t.Fatalf("rejected actions must not change state")
	}

	mustDo(t, m.MarkArrived(t1, "run"))
	if err := m.SelectGroup("Group 2"); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("group must be immutable after arrival, got %v", err)
	}
	mustDo(t, m.StartLecture(t2))
	mustDo(t, m.StartBreak(t2a))
	if err := m.StartBreak(t2b); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("second break start must fail, got %v", err)
	}
	if err := m.SkipBreak(); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("skip during break must fail, got %v", err)
	}
	draft = m.Draft()
	if got, _ := draft.Time(domain.FieldBreakStarted); !got.Equal(t2a) {
		t.Fatalf("break start rewritten: %v", got)
	}
}

func TestUnknownGroupRejected(t *testing.T) {
	t.Parallel()
	m := newMachine(t)
	if err := m.SelectGroup("Group 9"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestResetClearsEverything(t *testing.T) {
	t.Parallel()
	m := newMachine(t)
	mustDo(t, m.MarkArrived(t1, "run"))
	mustDo(t, m.StartLecture(t2))
	mustDo(t, m.StartBreak(t2a))
	m.Reset()
	draft := m.Draft()
	if m.Step() != domain.StepSelectGroup || !draft.Empty() {
		t.Fatalf("reset must clear draft and return to select_group")
	}
	if _, ok := draft.Time(domain.FieldArrived); ok {
		t.Fatalf("arrived must be null after reset")
	}
}

func TestAbandonEndAllowsRetry(t *testing.T) {
	t.Parallel()
	m := newMachine(t)
	mustDo(t, m.MarkArrived(t1, "run"))
	mustDo(t, m.StartLecture(t2))
	mustDo(t, m.SkipBreak())
	if _, err := m.EndLecture(t3); err != nil {
		t.Fatalf("end lecture: %v", err)
	}
	if _, err := m.EndLecture(t3); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("double end must fail, got %v", err)
	}
	m.AbandonEnd()
	retry := t3.Add(time.Minute)
	summary, err := m.EndLecture(retry)
	if err != nil {
		t.Fatalf("retry end lecture: %v", err)
	}
	if !summary.Ended.Equal(retry) {
		t.Fatalf("retry should capture a fresh end time, got %v", summary.Ended)
	}
}

func TestReportDiscardsOrKeepsDraft(t *testing.T) {
	t.Parallel()
	m := newMachine(t)
	mustDo(t, m.MarkArrived(t1, "run"))
	mustDo(t, m.OpenReport())
	if m.Step() != domain.StepViewReport {
		t.Fatalf("expected view_report, got %s", m.Step())
	}
	if err := m.StartLecture(t2); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("wizard actions must be disabled in the report, got %v", err)
	}
	mustDo(t, m.CloseReport(true))
	if m.Step() != domain.StepStartLecture {
		t.Fatalf("kept draft should resume at start_lecture, got %s", m.Step())
	}

	mustDo(t, m.OpenReport())
	mustDo(t, m.CloseReport(false))
	draft := m.Draft()
	if m.Step() != domain.StepSelectGroup || !draft.Empty() {
		t.Fatalf("discarding report exit must reset the draft")
	}

	mustDo(t, m.OpenReport())
	mustDo(t, m.CloseReport(true))
	if m.Step() != domain.StepSelectGroup {
		t.Fatalf("empty draft should land on select_group, got %s", m.Step())
	}
}

func TestNegativeDurationIsKept(t *testing.T) {
	t.Parallel()
	m := newMachine(t)
	mustDo(t, m.MarkArrived(t1, "run"))
	mustDo(t, m.StartLecture(t3))
	mustDo(t, m.SkipBreak())
	summary, err := m.EndLecture(t2)
	if err != nil {
		t.Fatalf("end lecture: %v", err)
	}
	if summary.LectureDuration >= 0 {
		t.Fatalf("expected negative duration, got %v", summary.LectureDuration)
	}
}

func TestFieldNames(t *testing.T) {
	t.Parallel()
	if domain.FieldBreakEnded.String() != "break_end" || domain.Field(42).String() != "unknown" {
		t.Fatalf("unexpected field names")
	}
}

func mustDo(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
