package domain

import "time"

// Field names one of the timestamp slots of a Draft.
type Field int

const (
	FieldArrived Field = iota
	FieldStarted
	FieldBreakStarted
	FieldBreakEnded
	FieldEnded
	fieldCount
)

var fieldNames = [fieldCount]string{"arrived", "start", "break_start", "break_end", "lecture_end"}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// Draft holds the fields of the lecture being recorded. It does no
// validation; Machine decides when each field may change.
type Draft struct {
	runID string
	group string
	times [fieldCount]time.Time
	isSet [fieldCount]bool
	notes string
}

func (d *Draft) RunID() string         { return d.runID }
func (d *Draft) SetRunID(runID string) { d.runID = runID }
func (d *Draft) Group() string         { return d.group }
func (d *Draft) SetGroup(group string) { d.group = group }
func (d *Draft) Notes() string         { return d.notes }
func (d *Draft) SetNotes(notes string) { d.notes = notes }

// Time reports the value of f and whether it has been set.
func (d *Draft) Time(f Field) (time.Time, bool) {
	return d.times[f], d.isSet[f]
}

func (d *Draft) SetTime(f Field, t time.Time) {
	d.times[f] = t
	d.isSet[f] = true
}

func (d *Draft) UnsetTime(f Field) {
	d.times[f] = time.Time{}
	d.isSet[f] = false
}

// Clear resets every field to its initial value.
func (d *Draft) Clear() {
	*d = Draft{}
}

// Empty reports whether nothing has been recorded yet.
func (d *Draft) Empty() bool {
	if d.group != "" || d.notes != "" || d.runID != "" {
		return false
	}
	for _, set := range d.isSet {
		if set {
			return false
		}
	}
	return true
}
