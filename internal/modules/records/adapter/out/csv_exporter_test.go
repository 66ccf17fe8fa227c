package out_test

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	recordsout "lectrack/internal/modules/records/adapter/out"
	"lectrack/internal/modules/records/domain"
	apperrors "lectrack/internal/platform/errors"
)

func TestExportWritesHeaderAndRows(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "lecture_records.csv")
	if err := os.WriteFile(path, []byte("stale content that must disappear\n"), 0o644); err != nil {
		t.Fatalf("seed stale file: %v", err)
	}
	withBreak := sampleRecord("Group 2", "2026-02-25 10:00:00")
	withBreak.BreakStart = "2026-02-25 10:20:00"
	withBreak.BreakEnd = "2026-02-25 10:30:00"
	withBreak.Notes = "room change, projector broken"
	records := []domain.Record{sampleRecord("Group 1", "2026-02-25 10:00:00"), withBreak}

	written, err := recordsout.NewCSVExporter().Export(context.Background(), path, records)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if int64(len(raw)) != written {
		t.Fatalf("reported %d bytes, file has %d", written, len(raw))
	}
	if strings.Contains(string(raw), "stale") {
		t.Fatalf("existing file was not overwritten")
	}

	rows, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	if err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if len(rows) != len(records)+1 {
		t.Fatalf("expected %d lines, got %d", len(records)+1, len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(domain.Columns, ",") {
		t.Fatalf("unexpected header %v", rows[0])
	}
	for i, rec := range records {
		want := rec.Values()
		for j := range want {
			if rows[i+1][j] != want[j] {
				t.Fatalf("row %d col %s: got %q want %q", i, domain.Columns[j], rows[i+1][j], want[j])
			}
		}
	}
	if rows[1][3] != "" || rows[1][4] != "" {
		t.Fatalf("skipped break must export as empty cells, got %q %q", rows[1][3], rows[1][4])
	}
}

func TestExportEmptyWritesHeaderOnly(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.csv")
	if _, err := recordsout.NewCSVExporter().Export(context.Background(), path, nil); err != nil {
		t.Fatalf("export: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if got := strings.TrimRight(string(raw), "\n"); got != strings.Join(domain.Columns, ",") {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestExportFailureIsIOError(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	_, err := recordsout.NewCSVExporter().Export(context.Background(), filepath.Join(blocker, "out.csv"), nil)
	if !errors.Is(err, apperrors.ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}
}
