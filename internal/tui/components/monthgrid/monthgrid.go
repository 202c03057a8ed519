package monthgrid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/calendar"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true)

	starredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Underline(true)
)

type Model struct {
	viewport viewport.Model
	Year     int
	Month    time.Month
	// Stars holds the rounded daily total per day of month (1-based).
	Stars map[int]float64
	Today  int // day of month to highlight, 0 for none
	width  int
	height int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	return Model{
		viewport: vp,
		Stars:    make(map[int]float64),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Year == 0 {
		return "No month loaded."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetMonth(year int, month time.Month, stars map[int]float64, today int) {
	m.Year = year
	m.Month = month
	m.Stars = stars
	m.Today = today
	m.Render()
}

func (m *Model) Render() {
	if m.Year == 0 {
		m.viewport.SetContent("No month loaded.")
		return
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %d", m.Month, m.Year)))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(" Mon  Tue  Wed  Thu  Fri  Sat  Sun"))
	b.WriteString("\n")

	for _, week := range calendar.MonthGrid(m.Year, m.Month) {
		for _, day := range week {
			b.WriteString(m.renderCell(day))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(emptyStyle.Render("* starred day"))
	m.viewport.SetContent(b.String())
}

func (m *Model) renderCell(day int) string {
	if day == 0 {
		return "     "
	}

	cell := fmt.Sprintf("%3d", day)
	if m.Stars[day] > 0 {
		cell += "*"
	} else {
		cell += " "
	}
	cell += " "

	switch {
	case day == m.Today:
		return todayStyle.Render(cell)
	case m.Stars[day] > 0:
		return starredStyle.Render(cell)
	default:
		return emptyStyle.Render(cell)
	}
}
