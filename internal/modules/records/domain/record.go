package domain

import (
	"fmt"
	"strings"

	apperrors "lectrack/internal/platform/errors"
)

const Table = "lectures"

// Columns lists the lectures table columns in storage and export order.
var Columns = []string{
	"group_code",
	"arrived",
	"start",
	"break_start",
	"break_end",
	"lecture_end",
	"break_duration",
	"lecture_duration",
	"notes",
}

// Record is one completed lecture session. Timestamps and durations are kept
// as the formatted strings that are persisted. An empty BreakStart or
// BreakEnd means no break was taken and is stored as NULL.
type Record struct {
	GroupCode       string
	Arrived         string
	Start           string
	BreakStart      string
	BreakEnd        string
	LectureEnd      string
	BreakDuration   string
	LectureDuration string
	Notes           string
}

func (r Record) HasBreak() bool {
	return r.BreakStart != "" && r.BreakEnd != ""
}

// Values returns the record fields in Columns order.
func (r Record) Values() []string {
	return []string{
		r.GroupCode,
		r.Arrived,
		r.Start,
		r.BreakStart,
		r.BreakEnd,
		r.LectureEnd,
		r.BreakDuration,
		r.LectureDuration,
		r.Notes,
	}
}

// Validate performs presence checks only.
func (r Record) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"group_code", r.GroupCode},
		{"arrived", r.Arrived},
		{"start", r.Start},
		{"lecture_end", r.LectureEnd},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s is required", apperrors.ErrInvalidInput, field.name)
		}
	}
	return nil
}
