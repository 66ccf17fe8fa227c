package domain

import (
	"fmt"
	"slices"
	"time"

	apperrors "lectrack/internal/platform/errors"
)

type Step int

const (
	StepSelectGroup Step = iota
	StepStartLecture
	StepManageBreak
	StepEndLecture
	StepViewReport
)

func (s Step) String() string {
	switch s {
	case StepSelectGroup:
		return "select_group"
	case StepStartLecture:
		return "start_lecture"
	case StepManageBreak:
		return "manage_break"
	case StepEndLecture:
		return "end_lecture"
	case StepViewReport:
		return "view_report"
	}
	return "unknown"
}

type Action string

const (
	ActionSelectGroup  Action = "select_group"
	ActionMarkArrived  Action = "mark_arrived"
	ActionStartLecture Action = "start_lecture"
	ActionStartBreak   Action = "start_break"
	ActionSkipBreak    Action = "skip_break"
	ActionEndBreak     Action = "end_break"
	ActionSetNotes     Action = "set_notes"
	ActionEndLecture   Action = "end_lecture"
	ActionViewReport   Action = "view_report"
	ActionExitReport   Action = "exit_report"
	ActionReset        Action = "reset"
)

// Summary is the completed draft plus derived durations, ready to persist.
type Summary struct {
	RunID           string
	Group           string
	Arrived         time.Time
	Started         time.Time
	BreakStarted    time.Time
	BreakEnded      time.Time
	HasBreak        bool
	Ended           time.Time
	Notes           string
	BreakDuration   time.Duration
	LectureDuration time.Duration
}

// Machine sequences the wizard steps over a single Draft.
type Machine struct {
	groups   []string
	step     Step
	returnTo Step
	draft    Draft
}

func NewMachine(groups []string) (*Machine, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: at least one group is required", apperrors.ErrInvalidInput)
	}
	return &Machine{groups: slices.Clone(groups)}, nil
}

func (m *Machine) Step() Step       { return m.step }
func (m *Machine) Groups() []string { return slices.Clone(m.groups) }

// Draft returns a copy of the current draft.
func (m *Machine) Draft() Draft { return m.draft }

// BreakInProgress reports whether a break was started and not yet ended.
func (m *Machine) BreakInProgress() bool {
	_, started := m.draft.Time(FieldBreakStarted)
	_, ended := m.draft.Time(FieldBreakEnded)
	return m.step == StepManageBreak && started && !ended
}

// Actions lists the actions enabled in the current state, in display order.
func (m *Machine) Actions() []Action {
	var actions []Action
	switch m.step {
	case StepSelectGroup:
		actions = []Action{ActionSelectGroup, ActionMarkArrived}
	case StepStartLecture:
		actions = []Action{ActionStartLecture}
	case StepManageBreak:
		if m.BreakInProgress() {
			actions = []Action{ActionEndBreak}
		} else {
			actions = []Action{ActionStartBreak, ActionSkipBreak}
		}
	case StepEndLecture:
		actions = []Action{ActionSetNotes, ActionEndLecture}
	case StepViewReport:
		return []Action{ActionExitReport}
	}
	return append(actions, ActionViewReport, ActionReset)
}

func (m *Machine) Can(action Action) bool {
	return slices.Contains(m.Actions(), action)
}

func (m *Machine) require(action Action) error {
	if !m.Can(action) {
		return fmt.Errorf("%w: %s in %s", apperrors.ErrInvalidTransition, action, m.step)
	}
	return nil
}

func (m *Machine) SelectGroup(group string) error {
	if err := m.require(ActionSelectGroup); err != nil {
		return err
	}
	if !slices.Contains(m.groups, group) {
		return fmt.Errorf("%w: unknown group %q", apperrors.ErrInvalidInput, group)
	}
	m.draft.SetGroup(group)
	return nil
}

// MarkArrived records the arrival time. Without an explicit selection the
// first configured group is used.
func (m *Machine) MarkArrived(now time.Time, runID string) error {
	if err := m.require(ActionMarkArrived); err != nil {
		return err
	}
	if m.draft.Group() == "" {
		m.draft.SetGroup(m.groups[0])
	}
	m.draft.SetRunID(runID)
	m.draft.SetTime(FieldArrived, now)
	m.step = StepStartLecture
	return nil
}

func (m *Machine) StartLecture(now time.Time) error {
	if err := m.require(ActionStartLecture); err != nil {
		return err
	}
	m.draft.SetTime(FieldStarted, now)
	m.step = StepManageBreak
	return nil
}

func (m *Machine) StartBreak(now time.Time) error {
	if err := m.require(ActionStartBreak); err != nil {
		return err
	}
	m.draft.SetTime(FieldBreakStarted, now)
	return nil
}

func (m *Machine) SkipBreak() error {
	if err := m.require(ActionSkipBreak); err != nil {
		return err
	}
	m.draft.UnsetTime(FieldBreakStarted)
	m.draft.UnsetTime(FieldBreakEnded)
	m.step = StepEndLecture
	return nil
}

func (m *Machine) EndBreak(now time.Time) error {
	if err := m.require(ActionEndBreak); err != nil {
		return err
	}
	m.draft.SetTime(FieldBreakEnded, now)
	m.step = StepEndLecture
	return nil
}

func (m *Machine) SetNotes(notes string) error {
	if err := m.require(ActionSetNotes); err != nil {
		return err
	}
	m.draft.SetNotes(notes)
	return nil
}

// EndLecture records the end time and returns the summary to persist. The
// machine stays in StepEndLecture until Reset; AbandonEnd undoes the end
// time when persisting fails.
func (m *Machine) EndLecture(now time.Time) (Summary, error) {
	if err := m.require(ActionEndLecture); err != nil {
		return Summary{}, err
	}
	if _, ended := m.draft.Time(FieldEnded); ended {
		return Summary{}, fmt.Errorf("%w: lecture already ended", apperrors.ErrInvalidTransition)
	}
	m.draft.SetTime(FieldEnded, now)
	return m.summarize(), nil
}

// AbandonEnd clears a pending end time so the terminal action can be retried.
func (m *Machine) AbandonEnd() {
	m.draft.UnsetTime(FieldEnded)
}

func (m *Machine) summarize() Summary {
	d := &m.draft
	arrived, _ := d.Time(FieldArrived)
	started, _ := d.Time(FieldStarted)
	ended, _ := d.Time(FieldEnded)
	breakStarted, hasStart := d.Time(FieldBreakStarted)
	breakEnded, hasEnd := d.Time(FieldBreakEnded)
	s := Summary{
		RunID:           d.RunID(),
		Group:           d.Group(),
		Arrived:         arrived,
		Started:         started,
		Ended:           ended,
		Notes:           d.Notes(),
		LectureDuration: ended.Sub(started),
	}
	if hasStart && hasEnd {
		s.HasBreak = true
		s.BreakStarted = breakStarted
		s.BreakEnded = breakEnded
		s.BreakDuration = breakEnded.Sub(breakStarted)
	}
	return s
}

func (m *Machine) OpenReport() error {
	if err := m.require(ActionViewReport); err != nil {
		return err
	}
	m.returnTo = m.step
	m.step = StepViewReport
	return nil
}

// CloseReport leaves the report. With keepDraft false, or when there is no
// draft to keep, the wizard restarts at StepSelectGroup.
func (m *Machine) CloseReport(keepDraft bool) error {
	if err := m.require(ActionExitReport); err != nil {
		return err
	}
	if !keepDraft || m.draft.Empty() {
		m.Reset()
		return nil
	}
	m.step = m.returnTo
	m.returnTo = StepSelectGroup
	return nil
}

// Reset discards the draft and returns to StepSelectGroup.
func (m *Machine) Reset() {
	m.draft.Clear()
	m.step = StepSelectGroup
	m.returnTo = StepSelectGroup
}
