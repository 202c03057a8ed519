package daylog

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

type LogSessionMsg struct{}

type RemoveEntryMsg struct {
	Index int // position within the day's filtered view
}

type Item struct {
	Entry     models.SessionEntry
	Breakdown models.ScoreBreakdown
	Label     string
	Index     int
}

func (i Item) Title() string {
	title := i.Label
	if i.Entry.Mindful {
		title = "🧘 " + title
	}
	return title
}

func (i Item) Description() string {
	if !i.Breakdown.Qualifies() {
		return fmt.Sprintf("%d min | no stars", i.Entry.DurationMin)
	}
	return fmt.Sprintf("%d min | %.2f stars", i.Entry.DurationMin, i.Breakdown.StarsEarned)
}

func (i Item) FilterValue() string { return i.Label }

type KeyMap struct {
	Log    key.Binding
	Remove key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Log: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "log session"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove entry"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []Item, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Log, keys.Remove}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Log, keys.Remove}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetItems(items []Item) {
	m.list.SetItems(toListItems(items))
}

func toListItems(items []Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Log):
			return m, func() tea.Msg { return LogSessionMsg{} }
		case key.Matches(msg, m.keys.Remove):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RemoveEntryMsg{Index: i.Index} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No sessions logged today.\n  Press 'a' to log one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
