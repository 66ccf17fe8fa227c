package wizard

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	wizdto "lectrack/internal/modules/wizard/dto"
	"lectrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type WizardPort interface {
	State(ctx context.Context) (wizdto.StateOutput, error)
	SelectGroup(ctx context.Context, group string) (wizdto.StateOutput, error)
	MarkArrived(ctx context.Context) (wizdto.StateOutput, error)
	StartLecture(ctx context.Context) (wizdto.StateOutput, error)
	StartBreak(ctx context.Context) (wizdto.StateOutput, error)
	SkipBreak(ctx context.Context) (wizdto.StateOutput, error)
	EndBreak(ctx context.Context) (wizdto.StateOutput, error)
	SetNotes(ctx context.Context, notes string) (wizdto.StateOutput, error)
	EndLecture(ctx context.Context) (wizdto.EndLectureOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// StateMsg carries the wizard state after an action. Err is set when the
// action was rejected or failed; State is still the current state.
type StateMsg struct {
	State wizdto.StateOutput
	Err   error
}

// SavedMsg reports the outcome of the terminal "end lecture" action.
type SavedMsg struct {
	Out wizdto.EndLectureOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   WizardPort
	state  wizdto.StateOutput
	cursor int
	notes  textarea.Model
	width  int
	height int
}

func New(port WizardPort) Model {
	ta := textarea.New()
	ta.Placeholder = "Add notes (optional)"
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	return Model{port: port, notes: ta}
}

func (m Model) Init() tea.Cmd {
	return m.run(m.port.State)
}

// Step returns the step of the last state received.
func (m Model) Step() string { return m.state.Step }

// State returns the last state received.
func (m Model) State() wizdto.StateOutput { return m.state }

// Notes returns the text currently in the notes editor.
func (m Model) Notes() string { return m.notes.Value() }

// Typing reports whether the notes editor has focus. The app model checks
// this so global keys do not swallow typed text.
func (m Model) Typing() bool {
	return m.state.Step == wizdto.StepEndLecture && m.notes.Focused()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.notes.SetWidth(max(m.width-8, 20))
		return m, nil

	case StateMsg:
		return m.applyState(msg.State, msg.Err == nil)

	case SavedMsg:
		return m.applyState(msg.Out.State, msg.Err == nil)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.Typing() {
		var cmd tea.Cmd
		m.notes, cmd = m.notes.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyState adopts a new state. accepted is false for rejected actions, whose
// state must not overwrite notes still being typed.
func (m Model) applyState(state wizdto.StateOutput, accepted bool) (Model, tea.Cmd) {
	prev := m.state.Step
	m.state = state
	if idx := slices.Index(state.Groups, state.Group); idx >= 0 {
		m.cursor = idx
	}
	if m.cursor >= len(state.Groups) {
		m.cursor = 0
	}
	if state.Step == wizdto.StepEndLecture && prev != wizdto.StepEndLecture {
		m.notes.SetValue(state.Notes)
		cmd := m.notes.Focus()
		return m, cmd
	}
	if state.Step == wizdto.StepEndLecture && accepted && state.Notes != m.notes.Value() {
		m.notes.SetValue(state.Notes)
	}
	if state.Step != wizdto.StepEndLecture {
		m.notes.Blur()
		m.notes.Reset()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	switch m.state.Step {
	case wizdto.StepSelectGroup:
		switch key {
		case "up", "k", "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j", "right", "l":
			if m.cursor < len(m.state.Groups)-1 {
				m.cursor++
			}
		case "enter", "a":
			return m, m.Arrive(m.selectedGroup())
		}

	case wizdto.StepStartLecture:
		if key == "enter" || key == "s" {
			return m, m.run(m.port.StartLecture)
		}

	case wizdto.StepManageBreak:
		switch key {
		case "b":
			return m, m.run(m.port.StartBreak)
		case "k":
			return m, m.run(m.port.SkipBreak)
		case "e", "enter":
			if m.state.BreakInProgress {
				return m, m.run(m.port.EndBreak)
			}
		}

	case wizdto.StepEndLecture:
		switch key {
		case "ctrl+s":
			return m, m.EndLecture(m.notes.Value())
		case "esc":
			if m.notes.Focused() {
				m.notes.Blur()
				return m, nil
			}
		case "tab":
			if !m.notes.Focused() {
				cmd := m.notes.Focus()
				return m, cmd
			}
		}
		if m.notes.Focused() {
			var cmd tea.Cmd
			m.notes, cmd = m.notes.Update(msg)
			return m, cmd
		}
		if key == "enter" {
			return m, m.EndLecture(m.notes.Value())
		}
	}
	return m, nil
}

func (m Model) selectedGroup() string {
	if m.cursor >= 0 && m.cursor < len(m.state.Groups) {
		return m.state.Groups[m.cursor]
	}
	return ""
}

// ─── actions ─────────────────────────────────────────────────────────────────
// Exported so the command palette can drive the same transitions as keys.

// Arrive selects group, when given, and marks arrival.
func (m Model) Arrive(group string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if group != "" {
			if state, err := m.port.SelectGroup(ctx, group); err != nil {
				return StateMsg{State: state, Err: err}
			}
		}
		state, err := m.port.MarkArrived(ctx)
		return StateMsg{State: state, Err: err}
	}
}

func (m Model) StartLecture() tea.Cmd { return m.run(m.port.StartLecture) }
func (m Model) StartBreak() tea.Cmd   { return m.run(m.port.StartBreak) }
func (m Model) SkipBreak() tea.Cmd    { return m.run(m.port.SkipBreak) }
func (m Model) EndBreak() tea.Cmd     { return m.run(m.port.EndBreak) }

// EndLecture stores notes and fires the terminal action.
func (m Model) EndLecture(notes string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if state, err := m.port.SetNotes(ctx, notes); err != nil {
			return SavedMsg{Out: wizdto.EndLectureOutput{State: state}, Err: err}
		}
		out, err := m.port.EndLecture(ctx)
		return SavedMsg{Out: out, Err: err}
	}
}

func (m Model) run(fn func(context.Context) (wizdto.StateOutput, error)) tea.Cmd {
	return func() tea.Msg {
		state, err := fn(context.Background())
		return StateMsg{State: state, Err: err}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var sb strings.Builder
	s := m.state
	switch s.Step {
	case wizdto.StepSelectGroup:
		sb.WriteString(theme.Title.Render("Step 1: Select Group and Mark Arrival") + "\n\n")
		sb.WriteString(theme.Muted.Render("Select Group Code:") + "\n")
		for i, g := range s.Groups {
			marker := "  "
			style := theme.Muted
			if i == m.cursor {
				marker = "▸ "
				style = theme.Hot
			}
			sb.WriteString(marker + style.Render(g) + "\n")
		}
		sb.WriteString("\n" + theme.Button.Render("Arrived"))
		sb.WriteString("\n\n" + theme.Muted.Render("↑/↓: choose group  enter: arrived"))

	case wizdto.StepStartLecture:
		sb.WriteString(theme.Title.Render("Step 2: Start Lecture for "+s.Group) + "\n\n")
		sb.WriteString(row("Arrival Time:", s.Arrived))
		sb.WriteString("\n" + theme.Button.Render("Start Lecture"))
		sb.WriteString("\n\n" + theme.Muted.Render("enter: start lecture"))

	case wizdto.StepManageBreak:
		sb.WriteString(theme.Title.Render("Step 3: Manage Breaks or Skip") + "\n\n")
		sb.WriteString(row("Lecture Start Time:", s.Started))
		if s.BreakInProgress {
			sb.WriteString(row("Break Start Time:", s.BreakStarted))
			sb.WriteString("\n" + theme.Button.Render("End Break"))
			sb.WriteString("\n\n" + theme.Muted.Render("e: end break"))
		} else {
			sb.WriteString("\n" + lipgloss.JoinHorizontal(lipgloss.Top,
				theme.Button.Render("Start Break"), "  ", theme.Button.Render("Skip Break")))
			sb.WriteString("\n\n" + theme.Muted.Render("b: start break  k: skip break"))
		}

	case wizdto.StepEndLecture:
		sb.WriteString(theme.Title.Render("Step 4: End Lecture & Save Data") + "\n\n")
		breakEnd := s.BreakEnded
		if breakEnd == "" {
			breakEnd = "No Break Taken"
		}
		sb.WriteString(row("Break End Time:", breakEnd))
		sb.WriteString("\n" + theme.Muted.Render("Add Notes (Optional):") + "\n")
		sb.WriteString(m.notes.View() + "\n")
		sb.WriteString("\n" + theme.Button.Render("End Lecture"))
		hint := "ctrl+s: end lecture  esc: leave notes"
		if !m.notes.Focused() {
			hint = "enter: end lecture  tab: edit notes"
		}
		sb.WriteString("\n\n" + theme.Muted.Render(hint))

	default:
		sb.WriteString(theme.Muted.Render("Loading…"))
	}

	w := m.width - 4
	if w < 20 {
		w = 60
	}
	return theme.Pane.Width(w).Render(sb.String())
}

func row(label, value string) string {
	return fmt.Sprintf("%s%s\n", theme.Label.Render(label), value)
}
