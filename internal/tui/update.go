package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/commitment"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/tui/components/daylog"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle logging form state
	if m.state == StateLogging {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateToday
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			dur, err := strconv.Atoi(strings.TrimSpace(m.logForm.Duration))
			if err != nil || dur < 0 {
				m.form.State = huh.StateNormal
				break
			}
			entry := models.SessionEntry{
				Day:         m.today(),
				ActivityID:  m.logForm.ActivityID,
				DurationMin: dur,
				Mindful:     m.logForm.Mindful,
			}
			breakdown := m.engine.Compute(entry, m.catalog, m.entries)
			if err := m.store.AppendEntry(entry); err == nil {
				m.refresh()
				m.updateValidationStatus()
				if breakdown.Qualifies() {
					m.statusMessage = fmt.Sprintf("Earned %.2f stars! %s", breakdown.StarsEarned, breakdown.Message)
				} else {
					m.statusMessage = "Session logged, no stars this time."
				}
				m.state = StateToday
			} else {
				// Stay in form state on error to allow retry
				m.form.State = huh.StateNormal
			}
		case huh.StateAborted:
			m.state = StateToday
		}
		return m, tea.Batch(cmds...)
	}

	// Handle promise form state
	if m.state == StatePromiseForm {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StatePromise
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			weekKey := models.WeekKey(m.now())
			if err := m.store.SetPromise(weekKey, strings.TrimSpace(m.promiseForm.Text)); err == nil {
				m.statusMessage = "Promise set for " + weekKey
				m.state = StatePromise
			} else {
				m.form.State = huh.StateNormal
			}
		case huh.StateAborted:
			m.state = StatePromise
		}
		return m, tea.Batch(cmds...)
	}

	// Handle remove confirmation state
	if m.state == StateConfirmRemove {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y":
				if err := m.store.RemoveEntryForDay(m.today(), m.entryToRemove); err == nil {
					m.refresh()
					m.updateValidationStatus()
					m.statusMessage = "Entry removed."
				}
				m.state = StateToday
			case "n", "esc":
				m.state = StateToday
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.dayLog.SetSize(msg.Width-4, msg.Height-8)
		m.grid.SetSize(msg.Width-4, msg.Height-8)

	case daylog.LogSessionMsg:
		m.openLogForm()
		return m, m.form.Init()

	case daylog.RemoveEntryMsg:
		m.entryToRemove = msg.Index
		m.state = StateConfirmRemove
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMessage = ""
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMessage = ""
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Log) && m.state == StateToday:
			m.openLogForm()
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Promise) && m.state == StatePromise:
			m.openPromiseForm()
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Claim) && m.state == StatePromise:
			m.claimReward()
			return m, nil
		case key.Matches(msg, m.keys.Unclaim) && m.state == StatePromise:
			m.unclaimReward()
			return m, nil
		}
	}

	if m.state == StateToday {
		var cmd tea.Cmd
		m.dayLog, cmd = m.dayLog.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.state == StateCalendar {
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) openLogForm() {
	m.logForm = &LogFormModel{Duration: "10"}

	options := make([]huh.Option[string], len(m.catalog))
	for i, a := range m.catalog {
		options[i] = huh.NewOption(fmt.Sprintf("%s (min %d min)", a.Label, a.MinDurationMin), a.ID)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Activity").
				Options(options...).
				Value(&m.logForm.ActivityID),
			huh.NewInput().
				Title("Duration (min)").
				Value(&m.logForm.Duration).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return err
					}
					if i < 0 {
						return fmt.Errorf("duration cannot be negative")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Mindful session?").
				Value(&m.logForm.Mindful),
		),
	).WithTheme(huh.ThemeDracula())
	m.state = StateLogging
}

func (m *Model) openPromiseForm() {
	weekKey := models.WeekKey(m.now())
	current, _ := m.store.GetPromise(weekKey)
	m.promiseForm = &PromiseFormModel{Text: current}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Promise for " + weekKey).
				Value(&m.promiseForm.Text).
				Validate(commitment.ValidatePromise),
		),
	).WithTheme(huh.ThemeDracula())
	m.state = StatePromiseForm
}

func (m *Model) claimReward() {
	weekKey := models.WeekKey(m.now())
	promise, err := m.store.GetPromise(weekKey)
	if err != nil {
		m.statusMessage = "Could not read promise: " + err.Error()
		return
	}
	claimed, err := m.store.IsClaimed(weekKey)
	if err != nil {
		m.statusMessage = "Could not read claim state: " + err.Error()
		return
	}

	weekStars, err := m.aggregator().WeekStarsForKey(weekKey)
	if err != nil {
		m.statusMessage = "Could not compute week stars: " + err.Error()
		return
	}

	exceeded, err := m.tracker().Claim(promise, claimed, weekStars)
	if err != nil {
		m.statusMessage = err.Error()
		return
	}

	if err := m.store.SetClaimed(weekKey, true); err != nil {
		m.statusMessage = "Could not save claim: " + err.Error()
		return
	}
	reward := models.Reward{
		ID:        uuid.New().String(),
		WeekKey:   weekKey,
		Label:     promise,
		Exceeded:  exceeded,
		ClaimedAt: m.now(),
	}
	if err := m.store.AddReward(reward); err != nil {
		m.statusMessage = "Could not save reward: " + err.Error()
		return
	}

	if exceeded {
		m.statusMessage = "Reward claimed - you exceeded your target!"
	} else {
		m.statusMessage = "Reward claimed!"
	}
}

func (m *Model) unclaimReward() {
	weekKey := models.WeekKey(m.now())
	claimed, err := m.store.IsClaimed(weekKey)
	if err != nil {
		m.statusMessage = "Could not read claim state: " + err.Error()
		return
	}

	if err := m.tracker().Unclaim(claimed); err != nil {
		m.statusMessage = err.Error()
		return
	}

	if err := m.store.SetClaimed(weekKey, false); err != nil {
		m.statusMessage = "Could not undo claim: " + err.Error()
		return
	}
	if err := m.store.RemoveReward(weekKey); err != nil {
		m.statusMessage = "Could not remove reward: " + err.Error()
		return
	}

	m.statusMessage = "Claim undone, the promise is kept for this week."
}
