package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateCalendar:
		content = m.viewCalendar()
	case StateActivities:
		content = m.viewActivities()
	case StatePromise:
		content = m.viewPromise()
	case StateLogging, StatePromiseForm:
		content = m.form.View()
	case StateConfirmRemove:
		content = m.viewConfirmRemove()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)

	return ui
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Calendar", "Activities", "Promise"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	var parts []string
	if m.statusMessage != "" {
		parts = append(parts, m.statusMessage)
	}
	if m.validationWarning != "" {
		parts = append(parts, dangerStyle.Render(m.validationWarning))
	}
	if len(parts) == 0 {
		return ""
	}
	return mutedStyle.Render(strings.Join(parts, "  "))
}

func (m Model) viewToday() string {
	agg := m.aggregator()
	total := agg.DailyStars(m.today())
	streak := agg.Streak(m.today())

	header := fmt.Sprintf("%s  %s  %s",
		m.today(),
		starStyle.Render(fmt.Sprintf("%.1f stars", total)),
		mutedStyle.Render(fmt.Sprintf("streak %d", streak)),
	)

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, m.dayLog.View()))
}

func (m Model) viewCalendar() string {
	return docStyle.Render(m.grid.View())
}

func (m Model) viewActivities() string {
	if len(m.catalog) == 0 {
		return docStyle.Render(mutedStyle.Render("No activities yet.\nAdd one with 'starflow activity add'."))
	}

	var b strings.Builder
	b.WriteString("Activity catalog\n\n")
	for _, a := range m.catalog {
		b.WriteString(fmt.Sprintf("  %-12s %-20s %s\n",
			a.ID, a.Label, mutedStyle.Render(fmt.Sprintf("min %d min", a.MinDurationMin))))
	}
	return docStyle.Render(b.String())
}

func (m Model) viewPromise() string {
	weekKey := models.WeekKey(m.now())
	promise, _ := m.store.GetPromise(weekKey)
	claimed, _ := m.store.IsClaimed(weekKey)
	weekStars, _ := m.aggregator().WeekStarsForKey(weekKey)

	state := m.tracker().StateFor(promise, claimed, weekStars)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Week %s\n\n", weekKey))
	b.WriteString(fmt.Sprintf("Stars:   %s / %.1f\n", starStyle.Render(fmt.Sprintf("%.2f", weekStars)), m.targets.WeeklyStarTarget))
	if promise != "" {
		b.WriteString(fmt.Sprintf("Promise: %s\n", promise))
	} else {
		b.WriteString(mutedStyle.Render("Promise: none, press 'p' to set one\n"))
	}
	b.WriteString(fmt.Sprintf("State:   %s\n", state))

	rewards, err := m.store.GetRewards()
	if err == nil && len(rewards) > 0 {
		b.WriteString("\nClaimed rewards:\n")
		for _, r := range rewards {
			line := fmt.Sprintf("  %s  %s", r.WeekKey, r.Label)
			if r.Exceeded {
				line += "  " + starStyle.Render("(exceeded!)")
			}
			b.WriteString(line + "\n")
		}
	}

	return docStyle.Render(b.String())
}

func (m Model) viewConfirmRemove() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Remove this session entry?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
