package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(0, 1)

	Title    = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted    = lipgloss.NewStyle().Foreground(Subtext0)
	Hot      = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Selected = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
)

// Styles colour console output. They render through a renderer bound to the
// destination writer, so text written to a file or pipe stays plain.
type Styles struct {
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Excess  lipgloss.Style
	Deficit lipgloss.Style
	Good    lipgloss.Style
}

func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Header:  r.NewStyle().Foreground(Sapphire).Bold(true),
		Muted:   r.NewStyle().Foreground(Subtext0),
		Excess:  r.NewStyle().Foreground(Peach),
		Deficit: r.NewStyle().Foreground(Lavender),
		Good:    r.NewStyle().Foreground(Green).Bold(true),
	}
}
