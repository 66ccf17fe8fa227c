package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	recdto "lectrack/internal/modules/records/dto"
	wizdto "lectrack/internal/modules/wizard/dto"
	apperrors "lectrack/internal/platform/errors"
	"lectrack/internal/ui/components"
	"lectrack/internal/ui/theme"
	reportview "lectrack/internal/ui/views/report"
	wizardview "lectrack/internal/ui/views/wizard"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type wizardPort interface {
	wizardview.WizardPort
	OpenReport(ctx context.Context) (wizdto.StateOutput, error)
	CloseReport(ctx context.Context) (wizdto.StateOutput, error)
	Reset(ctx context.Context) (wizdto.StateOutput, error)
}

type recordsPort interface {
	ListAll(ctx context.Context) ([]recdto.RecordOutput, error)
	Export(ctx context.Context, path string) (recdto.ExportOutput, error)
}

// ─── async messages ───────────────────────────────────────────────────────────

type reportOpenedMsg struct {
	state wizdto.StateOutput
	err   error
}

type reportClosedMsg struct {
	state wizdto.StateOutput
	err   error
}

type resetMsg struct {
	state wizdto.StateOutput
	err   error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Records key.Binding
	Reset   key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Break   key.Binding
	Skip    key.Binding
	Save    key.Binding
	Export  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Records: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view records")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next step")),
		Break:   key.NewBinding(key.WithKeys("b", "e"), key.WithHelp("b/e", "start/end break")),
		Skip:    key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "skip break")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "end lecture")),
		Export:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export csv")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Records, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Break, k.Skip, k.Save},
		{k.Records, k.Export, k.Reset},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. The wizard's step decides which
// sub-view is shown; the report screen is entered and left through the
// wizard so the draft follows the configured exit policy.
type Model struct {
	wizard  wizardPort
	records recordsPort

	wizView    wizardview.Model
	reportView reportview.Model

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	failed   bool
	width    int
	height   int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(wizard wizardPort, records recordsPort) Model {
	return Model{
		wizard:     wizard,
		records:    records,
		wizView:    wizardview.New(wizard),
		reportView: reportview.New(records),
		keys:       defaultKeys(),
		help:       help.New(),
		palette:    components.NewPalette(),
		status:     "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return m.wizView.Init()
}

func (m Model) inReport() bool {
	return m.wizView.Step() == wizdto.StepViewReport
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case wizardview.StateMsg:
		prev := m.wizView.State()
		var cmd tea.Cmd
		m.wizView, cmd = m.wizView.Update(msg)
		if msg.Err != nil {
			m.setError(msg.Err)
		} else {
			m.setStatus(transitionStatus(prev, msg.State))
		}
		return m, cmd

	case wizardview.SavedMsg:
		var cmd tea.Cmd
		m.wizView, cmd = m.wizView.Update(msg)
		if msg.Err != nil {
			m.setError(fmt.Errorf("lecture not saved, draft kept: %w", msg.Err))
		} else {
			m.setStatus(fmt.Sprintf("Lecture data for %s saved successfully! Lecture duration: %s",
				msg.Out.Group, msg.Out.LectureDuration))
		}
		return m, cmd

	case reportOpenedMsg:
		m.wizView, _ = m.wizView.Update(wizardview.StateMsg{State: msg.state})
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.setStatus("viewing records")
		cmd := m.reportView.Load()
		return m, cmd

	case reportClosedMsg, resetMsg:
		state, err := unpackState(msg)
		var cmd tea.Cmd
		m.wizView, cmd = m.wizView.Update(wizardview.StateMsg{State: state})
		if err != nil {
			m.setError(err)
		} else if _, ok := msg.(resetMsg); ok {
			m.setStatus("session reset")
		} else {
			m.setStatus("ready")
		}
		return m, cmd

	case reportview.BackMsg:
		return m, m.closeReportCmd()

	case reportview.RecordsLoadedMsg:
		if msg.Err != nil {
			m.setError(msg.Err)
		} else {
			m.setStatus(fmt.Sprintf("%d records", len(msg.Records)))
		}

	case reportview.ExportedMsg:
		if msg.Err != nil {
			m.setError(msg.Err)
		} else {
			m.setStatus(reportview.ExportSummary(msg.Out))
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.setStatus("ready")
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the notes editor while it has focus.
		if m.wizView.Typing() && !m.inReport() {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmd := m.palette.Open()
			return m, cmd
		case "v":
			if !m.inReport() {
				return m, m.openReportCmd()
			}
		case "r":
			if !m.inReport() {
				return m, m.resetCmd()
			}
		}
	}

	// Propagate the message to the active screen.
	var cmd tea.Cmd
	if m.inReport() {
		m.reportView, cmd = m.reportView.Update(msg)
	} else {
		m.wizView, cmd = m.wizView.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.inReport():
		content = m.reportView.View()
	default:
		content = m.wizView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

var stepLabels = []struct{ step, label string }{
	{wizdto.StepSelectGroup, "Group"},
	{wizdto.StepStartLecture, "Start"},
	{wizdto.StepManageBreak, "Break"},
	{wizdto.StepEndLecture, "End"},
	{wizdto.StepViewReport, "Records"},
}

func (m Model) renderHeader() string {
	current := m.wizView.Step()
	parts := make([]string, len(stepLabels))
	for i, s := range stepLabels {
		if s.step == current {
			parts[i] = theme.Hot.Render(" " + s.label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + s.label + " ")
		}
	}
	bar := theme.Title.Render("Lecture Tracker") + "  " + strings.Join(parts, theme.Muted.Render(" › "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.failed {
		left = theme.Danger.Render("✗ " + left)
	}
	if g := m.wizView.State().Group; g != "" && !m.inReport() {
		left = theme.Hot.Render("● "+g) + "  " + left
	}
	right := theme.Muted.Render("?:help  v:records  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "group":
		if rest == "" {
			m.setStatus("usage: group <code>")
			return m, nil
		}
		return m, m.stateCmd(func(ctx context.Context) (wizdto.StateOutput, error) {
			return m.wizard.SelectGroup(ctx, rest)
		})
	case "arrive":
		return m, m.wizView.Arrive(rest)
	case "start":
		return m, m.wizView.StartLecture()
	case "break:start":
		return m, m.wizView.StartBreak()
	case "break:skip":
		return m, m.wizView.SkipBreak()
	case "break:end":
		return m, m.wizView.EndBreak()
	case "notes":
		return m, m.stateCmd(func(ctx context.Context) (wizdto.StateOutput, error) {
			return m.wizard.SetNotes(ctx, rest)
		})
	case "end":
		notes := rest
		if notes == "" {
			notes = m.wizView.Notes()
		}
		return m, m.wizView.EndLecture(notes)
	case "records":
		if m.inReport() {
			cmd := m.reportView.Load()
			return m, cmd
		}
		return m, m.openReportCmd()
	case "export":
		return m, m.reportView.Export(rest)
	case "home":
		if !m.inReport() {
			m.setStatus("not viewing records")
			return m, nil
		}
		return m, m.closeReportCmd()
	case "reset":
		return m, m.resetCmd()
	default:
		m.setStatus("unknown command: " + parts[0])
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *Model) setError(err error) {
	m.failed = true
	switch {
	case errors.Is(err, apperrors.ErrInvalidTransition):
		m.status = "not allowed now: " + err.Error()
	default:
		m.status = err.Error()
	}
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.wizView, _ = m.wizView.Update(sz)
	m.reportView, _ = m.reportView.Update(sz)
}

// transitionStatus phrases the confirmation shown after an accepted action.
func transitionStatus(prev, next wizdto.StateOutput) string {
	switch {
	case next.Arrived != "" && prev.Arrived == "":
		return "Arrival time recorded: " + next.Arrived
	case next.Started != "" && prev.Started == "":
		return "Lecture started at: " + next.Started
	case next.BreakStarted != "" && prev.BreakStarted == "":
		return "Break started at: " + next.BreakStarted
	case next.BreakEnded != "" && prev.BreakEnded == "":
		return "Break ended at: " + next.BreakEnded
	case next.Step == wizdto.StepEndLecture && prev.Step == wizdto.StepManageBreak:
		return "Break skipped."
	}
	return "ready"
}

func unpackState(msg tea.Msg) (wizdto.StateOutput, error) {
	switch msg := msg.(type) {
	case reportClosedMsg:
		return msg.state, msg.err
	case resetMsg:
		return msg.state, msg.err
	}
	return wizdto.StateOutput{}, nil
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) stateCmd(fn func(context.Context) (wizdto.StateOutput, error)) tea.Cmd {
	return func() tea.Msg {
		state, err := fn(context.Background())
		return wizardview.StateMsg{State: state, Err: err}
	}
}

func (m Model) openReportCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.wizard.OpenReport(context.Background())
		return reportOpenedMsg{state: state, err: err}
	}
}

func (m Model) closeReportCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.wizard.CloseReport(context.Background())
		return reportClosedMsg{state: state, err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.wizard.Reset(context.Background())
		return resetMsg{state: state, err: err}
	}
}
