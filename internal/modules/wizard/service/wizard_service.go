package service

import (
	"context"
	"sync"

	"github.com/hashicorp/go-hclog"

	"lectrack/internal/modules/wizard/domain"
	wizardout "lectrack/internal/modules/wizard/port/out"
	"lectrack/internal/platform/clock"
	"lectrack/internal/platform/id"
	"lectrack/internal/platform/logging"
)

// Snapshot is a consistent view of the machine taken under the service lock.
type Snapshot struct {
	Step            domain.Step
	Groups          []string
	Draft           domain.Draft
	BreakInProgress bool
	Actions         []domain.Action
}

// WizardService owns the single in-flight draft. Bubble Tea runs commands
// on their own goroutines, so every call is serialized.
type WizardService struct {
	mu        sync.Mutex
	clock     clock.Clock
	idGen     id.Generator
	sink      wizardout.RecordSink
	machine   *domain.Machine
	keepDraft bool
	log       hclog.Logger
}

func NewWizardService(clock clock.Clock, idGen id.Generator, sink wizardout.RecordSink, groups []string, keepDraft bool, log hclog.Logger) (*WizardService, error) {
	machine, err := domain.NewMachine(groups)
	if err != nil {
		return nil, err
	}
	return &WizardService{
		clock:     clock,
		idGen:     idGen,
		sink:      sink,
		machine:   machine,
		keepDraft: keepDraft,
		log:       logging.OrNull(log).Named("wizard"),
	}, nil
}

func (s *WizardService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *WizardService) snapshot() Snapshot {
	return Snapshot{
		Step:            s.machine.Step(),
		Groups:          s.machine.Groups(),
		Draft:           s.machine.Draft(),
		BreakInProgress: s.machine.BreakInProgress(),
		Actions:         s.machine.Actions(),
	}
}

func (s *WizardService) apply(action domain.Action, fn func(m *domain.Machine) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.machine); err != nil {
		s.log.Debug("action rejected", "action", action, "step", s.machine.Step(), "error", err)
		return s.snapshot(), err
	}
	draft := s.machine.Draft()
	s.log.Debug("action applied", "action", action, "step", s.machine.Step(), "run_id", draft.RunID())
	return s.snapshot(), nil
}

func (s *WizardService) SelectGroup(group string) (Snapshot, error) {
	return s.apply(domain.ActionSelectGroup, func(m *domain.Machine) error { return m.SelectGroup(group) })
}

func (s *WizardService) MarkArrived() (Snapshot, error) {
	return s.apply(domain.ActionMarkArrived, func(m *domain.Machine) error {
		return m.MarkArrived(s.clock.Now(), s.idGen.New())
	})
}

func (s *WizardService) StartLecture() (Snapshot, error) {
	return s.apply(domain.ActionStartLecture, func(m *domain.Machine) error { return m.StartLecture(s.clock.Now()) })
}

func (s *WizardService) StartBreak() (Snapshot, error) {
	return s.apply(domain.ActionStartBreak, func(m *domain.Machine) error { return m.StartBreak(s.clock.Now()) })
}

func (s *WizardService) SkipBreak() (Snapshot, error) {
	return s.apply(domain.ActionSkipBreak, func(m *domain.Machine) error { return m.SkipBreak() })
}

func (s *WizardService) EndBreak() (Snapshot, error) {
	return s.apply(domain.ActionEndBreak, func(m *domain.Machine) error { return m.EndBreak(s.clock.Now()) })
}

func (s *WizardService) SetNotes(notes string) (Snapshot, error) {
	return s.apply(domain.ActionSetNotes, func(m *domain.Machine) error { return m.SetNotes(notes) })
}

// EndLecture captures the end time, persists the record and resets the
// draft. When persisting fails the draft is kept without an end time so the
// operator can retry.
func (s *WizardService) EndLecture(ctx context.Context) (domain.Summary, Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	summary, err := s.machine.EndLecture(s.clock.Now())
	if err != nil {
		return domain.Summary{}, s.snapshot(), err
	}
	if summary.LectureDuration < 0 || summary.BreakDuration < 0 {
		s.log.Warn("negative duration recorded", "run_id", summary.RunID, "lecture", summary.LectureDuration, "break", summary.BreakDuration)
	}
	if err := s.sink.Append(ctx, summary); err != nil {
		s.machine.AbandonEnd()
		s.log.Error("persist lecture failed", "run_id", summary.RunID, "group", summary.Group, "error", err)
		return domain.Summary{}, s.snapshot(), err
	}
	s.machine.Reset()
	s.log.Info("lecture recorded", "run_id", summary.RunID, "group", summary.Group, "lecture", summary.LectureDuration, "break", summary.BreakDuration)
	return summary, s.snapshot(), nil
}

func (s *WizardService) OpenReport() (Snapshot, error) {
	return s.apply(domain.ActionViewReport, func(m *domain.Machine) error { return m.OpenReport() })
}

func (s *WizardService) CloseReport() (Snapshot, error) {
	return s.apply(domain.ActionExitReport, func(m *domain.Machine) error { return m.CloseReport(s.keepDraft) })
}

func (s *WizardService) Reset() Snapshot {
	snap, _ := s.apply(domain.ActionReset, func(m *domain.Machine) error {
		m.Reset()
		return nil
	})
	return snap
}
