package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2f")
	Mantle   = lipgloss.Color("#2b2b3b")
	Surface1 = lipgloss.Color("#44475a")
	Text     = lipgloss.Color("#f0f0f0")
	Subtext0 = lipgloss.Color("#a6a6c0")
	Pink     = lipgloss.Color("#ff79c6")
	Indigo   = lipgloss.Color("#6272a4")
	Green    = lipgloss.Color("#50fa7b")
	Red      = lipgloss.Color("#ff5555")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1, 2)

	Title  = lipgloss.NewStyle().Foreground(Pink).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Subtext0)
	Hot    = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Danger = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Label  = lipgloss.NewStyle().Foreground(Subtext0).Width(20)
	Button = lipgloss.NewStyle().Foreground(Text).Background(Indigo).Padding(0, 2)
)
