package report_test

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	recdto "lectrack/internal/modules/records/dto"
	reportview "lectrack/internal/ui/views/report"
)

type fakeRecords struct {
	exportPath string
}

func (f *fakeRecords) ListAll(context.Context) ([]recdto.RecordOutput, error) {
	return nil, nil
}

func (f *fakeRecords) Export(_ context.Context, path string) (recdto.ExportOutput, error) {
	f.exportPath = path
	return recdto.ExportOutput{Path: "out.csv", Records: 2, Bytes: 2048}, nil
}

func TestEmptyBreakRendersNone(t *testing.T) {
	t.Parallel()
	m := reportview.New(&fakeRecords{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	m, _ = m.Update(reportview.RecordsLoadedMsg{Records: []recdto.RecordOutput{{
		GroupCode:       "Group 1",
		Arrived:         "2026-02-25 09:55:00",
		Start:           "2026-02-25 10:00:00",
		LectureEnd:      "2026-02-25 12:30:00",
		BreakDuration:   "0:00:00",
		LectureDuration: "2:30:00",
		Notes:           "room\nchange",
	}}})
	if m.Count() != 1 {
		t.Fatalf("expected 1 record, got %d", m.Count())
	}
	view := m.View()
	if !strings.Contains(view, "None") {
		t.Fatalf("expected None placeholder in view")
	}
	if !strings.Contains(view, "notes") || !strings.Contains(view, "room change") {
		t.Fatalf("expected notes column in view")
	}
}

func TestBackAndExportKeys(t *testing.T) {
	t.Parallel()
	port := &fakeRecords{}
	m := reportview.New(port)
	m, _ = m.Update(reportview.RecordsLoadedMsg{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(reportview.BackMsg); !ok {
		t.Fatalf("esc should go back")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	msg, ok := cmd().(reportview.ExportedMsg)
	if !ok || msg.Err != nil {
		t.Fatalf("unexpected export msg: %#v", msg)
	}
	if port.exportPath != "" {
		t.Fatalf("key export should use the default path, got %q", port.exportPath)
	}
	if got := reportview.ExportSummary(msg.Out); got != "exported 2 records to out.csv (2.0 kB)" {
		t.Fatalf("unexpected summary %q", got)
	}
}
