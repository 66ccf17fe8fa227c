package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lectrack/internal/ui/theme"
)

type PaletteSubmitMsg struct{ Input string }

type PaletteCancelMsg struct{}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Pink).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle   = lipgloss.NewStyle().Foreground(theme.Subtext0)
	activeStyle = lipgloss.NewStyle().Foreground(theme.Green)
)

type hint struct {
	name string
	args string
}

// hints must stay in sync with the switch in app/model.go executePalette.
var paletteHints = []hint{
	{"group", "<code>"},
	{"arrive", "[code]"},
	{"start", ""},
	{"break:start", ""},
	{"break:skip", ""},
	{"break:end", ""},
	{"notes", "<text>"},
	{"end", "[notes]"},
	{"records", ""},
	{"export", "[path]"},
	{"home", ""},
	{"reset", ""},
}

const maxHints = 6

// Palette is a command line overlay. Tab completes the highlighted command.
type Palette struct {
	input    textinput.Model
	visible  bool
	selected int
	width    int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "type a command…"
	ti.CharLimit = 256
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette with an empty input and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.selected = 0
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		matches := p.matches()
		switch msg.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "up":
			if p.selected > 0 {
				p.selected--
			}
			return p, nil
		case "down":
			if p.selected < len(matches)-1 {
				p.selected++
			}
			return p, nil
		case "tab":
			if p.selected < len(matches) {
				h := matches[p.selected]
				completed := h.name
				if h.args != "" {
					completed += " "
				}
				p.input.SetValue(completed)
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	prev := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != prev {
		p.selected = 0
	}
	return p, cmd
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

// matches filters hints by the command word typed so far.
func (p Palette) matches() []hint {
	word := strings.ToLower(strings.TrimLeft(p.input.Value(), " "))
	if i := strings.IndexByte(word, ' '); i >= 0 {
		word = word[:i]
	}
	var out []hint
	for _, h := range paletteHints {
		if strings.HasPrefix(h.name, word) {
			out = append(out, h)
			if len(out) == maxHints {
				break
			}
		}
	}
	return out
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command Palette") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if matches := p.matches(); len(matches) > 0 {
		sb.WriteString("\n")
		for i, h := range matches {
			line := strings.TrimSpace(h.name + " " + h.args)
			if i == p.selected {
				sb.WriteString(activeStyle.Render("› "+line) + "\n")
			} else {
				sb.WriteString(hintStyle.Render("  "+line) + "\n")
			}
		}
		sb.WriteString("\n" + hintStyle.Render("tab: complete  enter: run  esc: close"))
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
