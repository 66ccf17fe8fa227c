package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	recdto "lectrack/internal/modules/records/dto"
	"lectrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type RecordsPort interface {
	ListAll(ctx context.Context) ([]recdto.RecordOutput, error)
	Export(ctx context.Context, path string) (recdto.ExportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type RecordsLoadedMsg struct {
	Records []recdto.RecordOutput
	Err     error
}

type ExportedMsg struct {
	Out recdto.ExportOutput
	Err error
}

// BackMsg asks the app to leave the report.
type BackMsg struct{}

const none = "None"

var columns = []table.Column{
	{Title: "group_code", Width: 10},
	{Title: "arrived", Width: 19},
	{Title: "start", Width: 19},
	{Title: "break_start", Width: 19},
	{Title: "break_end", Width: 19},
	{Title: "lecture_end", Width: 19},
	{Title: "break_duration", Width: 14},
	{Title: "lecture_duration", Width: 16},
	{Title: "notes", Width: 24},
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    RecordsPort
	table   table.Model
	records []recdto.RecordOutput
	notes   viewport.Model
	spinner spinner.Model
	loading bool
	err     error
	width   int
	height  int
}

func New(port RecordsPort) Model {
	t := table.New(table.WithColumns(columns), table.WithFocused(true))
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Indigo).
		BorderBottom(true).
		Foreground(theme.Pink).
		Bold(true)
	s.Selected = s.Selected.Foreground(theme.Base).Background(theme.Green).Bold(false)
	t.SetStyles(s)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(0, 1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Pink)

	return Model{port: port, table: t, notes: vp, spinner: sp}
}

// Load fetches every stored record.
func (m *Model) Load() tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Export writes the CSV file. An empty path uses the configured default.
func (m Model) Export(path string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Export(context.Background(), path)
		return ExportedMsg{Out: out, Err: err}
	}
}

// Count returns the number of loaded records.
func (m Model) Count() int { return len(m.records) }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case RecordsLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.records = msg.Records
		m.table.SetRows(toRows(msg.Records))
		m.table.GotoTop()
		m.notes.SetContent(m.renderNotes())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "b":
			return m, func() tea.Msg { return BackMsg{} }
		case "x":
			return m, m.Export("")
		}
	}

	if !m.loading {
		prev := m.table.Cursor()
		var tCmd tea.Cmd
		m.table, tCmd = m.table.Update(msg)
		cmds = append(cmds, tCmd)
		if m.table.Cursor() != prev {
			m.notes.SetContent(m.renderNotes())
			m.notes.GotoTop()
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading records…")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Lecture Records") + "\n\n")
	switch {
	case m.err != nil:
		sb.WriteString(theme.Danger.Render(m.err.Error()) + "\n")
	case len(m.records) == 0:
		sb.WriteString(theme.Muted.Render("No records yet.") + "\n")
	default:
		sb.WriteString(m.table.View() + "\n\n")
		notesPane := lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Surface1).
			Width(max(m.width-4, 20)).
			Render(m.notes.View())
		sb.WriteString(notesPane + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("↑/↓: browse  x: export csv  esc: back to home"))
	return sb.String()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	h := m.height - 12
	if h < 3 {
		h = 3
	}
	m.table.SetHeight(h)
	m.table.SetWidth(max(m.width-2, 20))
	m.notes.Width = max(m.width-6, 20)
	m.notes.Height = 3
}

func (m Model) renderNotes() string {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.records) {
		return ""
	}
	r := m.records[c]
	if r.Notes == "" {
		return theme.Muted.Render("notes: -")
	}
	return theme.Muted.Render("notes: ") + r.Notes
}

func toRows(records []recdto.RecordOutput) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			r.GroupCode,
			r.Arrived,
			r.Start,
			orNone(r.BreakStart),
			orNone(r.BreakEnd),
			r.LectureEnd,
			r.BreakDuration,
			r.LectureDuration,
			strings.Join(strings.Fields(r.Notes), " "),
		}
	}
	return rows
}

func orNone(s string) string {
	if s == "" {
		return none
	}
	return s
}

// ExportSummary renders a one-line export result for the status bar.
func ExportSummary(out recdto.ExportOutput) string {
	return fmt.Sprintf("exported %d records to %s (%s)",
		out.Records, out.Path, humanize.Bytes(uint64(out.Bytes)))
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := m.port.ListAll(context.Background())
		return RecordsLoadedMsg{Records: records, Err: err}
	}
}
