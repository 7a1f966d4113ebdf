// Package browse is a read-only terminal view of the food catalog.
package browse

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "haverfit/internal/modules/catalog/dto"
	"haverfit/internal/ui/theme"
)

type Port interface {
	Listing(ctx context.Context) (iter.Seq[catalogdto.ListingEntry], error)
}

type LoadedMsg struct {
	Entries []catalogdto.ListingEntry
	Err     error
}

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// chrome is the number of lines taken by the detail pane and help bar.
const chrome = 6

type Model struct {
	port    Port
	entries []catalogdto.ListingEntry
	cursor  int
	width   int
	height  int
	loading bool
	err     error
	keys    keyMap
	help    help.Model
}

func New(port Port) Model {
	return Model{port: port, loading: true, keys: defaultKeys(), help: help.New()}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		m.entries = msg.Entries
		m.cursor = 0
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return theme.Muted.Render("Loading catalog…")
	}
	if m.err != nil {
		return theme.Hot.Render("error: "+m.err.Error()) + "\n\n" + m.help.View(m.keys)
	}
	if len(m.entries) == 0 {
		return theme.Muted.Render("The catalog is empty.") + "\n\n" + m.help.View(m.keys)
	}

	lines, selectedLine := m.renderLines()
	if room := m.height - chrome; m.height > 0 && room > 0 && len(lines) > room {
		start := selectedLine - room/2
		start = max(0, min(start, len(lines)-room))
		lines = lines[start : start+room]
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n")
	sb.WriteString(m.renderDetail())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Selected returns the food under the cursor.
func (m Model) Selected() (catalogdto.FoodOutput, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return catalogdto.FoodOutput{}, false
	}
	return m.entries[m.cursor].Food, true
}

func (m Model) renderLines() ([]string, int) {
	lines := make([]string, 0, len(m.entries)+8)
	selectedLine := 0
	for i, entry := range m.entries {
		if entry.Header != "" {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, theme.Title.Render(entry.Header))
		}
		text := fmt.Sprintf("%s: %s", entry.Food.Label, entry.Food.Name)
		if i == m.cursor {
			selectedLine = len(lines)
			lines = append(lines, theme.Selected.Render("> "+text))
			continue
		}
		lines = append(lines, "  "+text)
	}
	return lines, selectedLine
}

func (m Model) renderDetail() string {
	food, ok := m.Selected()
	if !ok {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(food.Label+"  "+food.Name),
		fmt.Sprintf("%s %g  %s %gg  %s %gg  %s %gg",
			theme.Muted.Render("calories"), food.Calories,
			theme.Muted.Render("carbs"), food.Carb,
			theme.Muted.Render("protein"), food.Protein,
			theme.Muted.Render("fat"), food.Fat),
	)
	return theme.Pane.Render(body)
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		seq, err := m.port.Listing(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		var entries []catalogdto.ListingEntry
		for entry := range seq {
			entries = append(entries, entry)
		}
		return LoadedMsg{Entries: entries}
	}
}

// Run opens the browser in the alternate screen and blocks until it quits.
func Run(ctx context.Context, port Port) error {
	p := tea.NewProgram(New(port), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
