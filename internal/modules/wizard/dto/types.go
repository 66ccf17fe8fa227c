package dto

const (
	StepSelectGroup  = "select_group"
	StepStartLecture = "start_lecture"
	StepManageBreak  = "manage_break"
	StepEndLecture   = "end_lecture"
	StepViewReport   = "view_report"
)

// StateOutput is a snapshot of the wizard. Timestamps are formatted and
// empty when unset.
type StateOutput struct {
	Step            string
	Groups          []string
	Group           string
	Arrived         string
	Started         string
	BreakStarted    string
	BreakEnded      string
	BreakInProgress bool
	Notes           string
	Actions         []string
}

type EndLectureOutput struct {
	Group           string
	Start           string
	LectureEnd      string
	BreakDuration   string
	LectureDuration string
	State           StateOutput
}
