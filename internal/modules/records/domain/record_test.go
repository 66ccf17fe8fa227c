package domain_test

import (
	"errors"
	"testing"

	"lectrack/internal/modules/records/domain"
	apperrors "lectrack/internal/platform/errors"
)

func TestValidatePresence(t *testing.T) {
	t.Parallel()
	valid := domain.Record{GroupCode: "Group 1", Arrived: "a", Start: "s", LectureEnd: "e"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}
	cases := map[string]func(*domain.Record){
		"group":   func(r *domain.Record) { r.GroupCode = " " },
		"arrived": func(r *domain.Record) { r.Arrived = "" },
		"start":   func(r *domain.Record) { r.Start = "" },
		"end":     func(r *domain.Record) { r.LectureEnd = "" },
	}
	for name, mutate := range cases {
		rec := valid
		mutate(&rec)
		if err := rec.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%s: expected invalid input, got %v", name, err)
		}
	}
}

func TestValuesFollowColumns(t *testing.T) {
	t.Parallel()
	rec := domain.Record{GroupCode: "g", Arrived: "a", Start: "s", BreakStart: "bs", BreakEnd: "be", LectureEnd: "e", BreakDuration: "bd", LectureDuration: "ld", Notes: "n"}
	values := rec.Values()
	if len(values) != len(domain.Columns) {
		t.Fatalf("expected %d values, got %d", len(domain.Columns), len(values))
	}
	if values[3] != "bs" || values[8] != "n" {
		t.Fatalf("values out of column order: %v", values)
	}
	if !rec.HasBreak() {
		t.Fatalf("record with both break fields must report a break")
	}
	rec.BreakEnd = ""
	if rec.HasBreak() {
		t.Fatalf("half-filled break must not count as a break")
	}
}
