package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/aggregate"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/commitment"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/scoring"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/storage"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/tui/components/daylog"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/tui/components/monthgrid"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/validation"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateCalendar
	StateActivities
	StatePromise
	StateLogging
	StatePromiseForm
	StateConfirmRemove
)

// tabCount is the number of cycleable tabs; form and confirm states sit
// outside the cycle.
const tabCount = 4

type LogFormModel struct {
	ActivityID string
	Duration   string
	Mindful    bool
}

type PromiseFormModel struct {
	Text string
}

type Model struct {
	store             storage.Provider
	engine            *scoring.Engine
	now               func() time.Time
	state             SessionState
	keys              KeyMap
	help              help.Model
	dayLog            daylog.Model
	grid              monthgrid.Model
	form              *huh.Form
	logForm           *LogFormModel
	promiseForm       *PromiseFormModel
	entryToRemove     int
	quitting          bool
	width             int
	height            int
	statusMessage     string
	validationWarning string

	// Snapshot of the loaded document, refreshed after every mutation.
	catalog models.Catalog
	targets models.Targets
	entries []models.SessionEntry
}

func NewModel(store storage.Provider, engine *scoring.Engine, now func() time.Time) Model {
	m := Model{
		store:  store,
		engine: engine,
		now:    now,
		state:  StateToday,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		dayLog: daylog.New(nil, 0, 0),
		grid:   monthgrid.New(0, 0),
	}

	m.refresh()
	m.updateValidationStatus()

	return m
}

func (m *Model) today() string {
	return m.now().Format("2006-01-02")
}

// refresh reloads the document snapshot and re-renders the components.
func (m *Model) refresh() {
	catalog, err := m.store.GetActivities()
	if err != nil {
		catalog = models.Catalog{}
	}
	targets, err := m.store.GetTargets()
	if err != nil {
		targets = models.Targets{}
	}
	entries, err := m.store.GetEntries()
	if err != nil {
		entries = []models.SessionEntry{}
	}

	m.catalog = catalog
	m.targets = targets
	m.entries = entries

	m.dayLog.SetItems(m.dayItems())

	now := m.now()
	agg := m.aggregator()
	stars := make(map[int]float64)
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for d := 1; d <= daysInMonth; d++ {
		day := fmt.Sprintf("%04d-%02d-%02d", now.Year(), int(now.Month()), d)
		if s := agg.DailyStars(day); s > 0 {
			stars[d] = s
		}
	}
	m.grid.SetMonth(now.Year(), now.Month(), stars, now.Day())
}

func (m *Model) aggregator() *aggregate.Aggregator {
	return aggregate.New(m.engine, m.catalog, m.targets, m.entries)
}

func (m *Model) tracker() commitment.Tracker {
	return commitment.New(m.targets.WeeklyStarTarget)
}

func (m *Model) dayItems() []daylog.Item {
	dayEntries, logIndices := models.EntriesForDay(m.entries, m.today())

	items := make([]daylog.Item, len(dayEntries))
	for i, e := range dayEntries {
		label := e.ActivityID
		if a, ok := m.catalog.ByID(e.ActivityID); ok {
			label = a.Label
		}
		items[i] = daylog.Item{
			Entry:     e,
			Breakdown: m.engine.ComputeAt(logIndices[i], m.catalog, m.entries),
			Label:     label,
			Index:     i,
		}
	}
	return items
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Log, m.keys.Remove)
	case StatePromise:
		keys = append(keys, m.keys.Promise, m.keys.Claim, m.keys.Unclaim)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateToday:
		actions = []key.Binding{m.keys.Log, m.keys.Remove}
	case StatePromise:
		actions = []key.Binding{m.keys.Promise, m.keys.Claim, m.keys.Unclaim}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// updateValidationStatus runs validation and updates the warning message
func (m *Model) updateValidationStatus() {
	validator := validation.New()

	catalogResult := validator.ValidateCatalog(m.catalog)
	entryResult := validator.ValidateEntries(m.entries, m.catalog)

	count := len(catalogResult.Conflicts) + len(entryResult.Conflicts)
	if count > 0 {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", count)
	} else {
		m.validationWarning = ""
	}
}
