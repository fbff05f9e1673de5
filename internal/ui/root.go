package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fchant/daybrain/internal/model"
	"github.com/fchant/daybrain/internal/store"
)

type view int

const (
	viewTasks view = iota
	viewWhatNow
)

// RootModel is the main application model
type RootModel struct {
	store  *store.Store
	keys   KeyMap
	styles Styles

	width  int
	height int

	currentView view
	cursor      int
	tasks       []model.Task

	input  textinput.Model
	adding bool

	energy model.EnergyLevel
	recs   []model.Task

	statusMsg string
	errorMsg  string
}

// tickMsg drives the periodic refresh so recurring tasks generated in the
// background show up without a keypress
type tickMsg time.Time

// NewRootModel creates the root model
func NewRootModel(s *store.Store) RootModel {
	input := textinput.New()
	input.Placeholder = `Walk the dog !tomorrow !high`
	input.CharLimit = 200

	m := RootModel{
		store:  s,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		input:  input,
		energy: model.EnergyMedium,
	}
	m.reload()
	return m
}

// Init starts the refresh ticker
func (m RootModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(5*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// reload pulls the visible task list back out of the store
func (m *RootModel) reload() {
	var visible []model.Task
	for _, t := range m.store.Tasks() {
		if !t.Archived {
			visible = append(visible, t)
		}
	}
	m.tasks = visible
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.currentView == viewWhatNow {
		m.recs = m.store.Recommend(store.Criteria{Time: store.TimeMedium, Energy: m.energy})
	}
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.reload()
		return m, tick()

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m RootModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		text := m.input.Value()
		m.adding = false
		m.input.Reset()
		m.input.Blur()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		task, err := m.store.QuickAdd(text)
		if err != nil {
			m.errorMsg = err.Error()
		} else {
			m.statusMsg = fmt.Sprintf("Added %q", task.Title)
		}
		m.reload()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.adding = false
		m.input.Reset()
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m RootModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	m.errorMsg = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0

	case key.Matches(msg, m.keys.Bottom):
		if len(m.tasks) > 0 {
			m.cursor = len(m.tasks) - 1
		}

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			if !t.Completed && !m.store.CanCompleteTask(t.ID) {
				m.errorMsg = "blocked: this task has incomplete dependencies"
				break
			}
			if _, err := m.store.CompleteTask(t.ID); err != nil {
				m.errorMsg = err.Error()
			}
			m.reload()
		}

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			if err := m.store.DeleteTask(t.ID); err != nil {
				m.errorMsg = err.Error()
			} else {
				m.statusMsg = fmt.Sprintf("Deleted %q — press u to undo", t.Title)
			}
			m.reload()
		}

	case key.Matches(msg, m.keys.Undo):
		if m.store.UndoDelete() {
			m.statusMsg = "Restored"
		} else {
			m.errorMsg = "nothing to undo"
		}
		m.reload()

	case key.Matches(msg, m.keys.Archive):
		n := m.store.ArchiveCompletedTasks()
		m.statusMsg = fmt.Sprintf("Archived %d task(s)", n)
		m.reload()

	case key.Matches(msg, m.keys.WhatNow):
		m.currentView = viewWhatNow
		m.reload()

	case key.Matches(msg, m.keys.Energy):
		if m.currentView == viewWhatNow {
			m.energy = nextEnergy(m.energy)
			m.reload()
		}

	case key.Matches(msg, m.keys.Tasks):
		m.currentView = viewTasks
	}

	return m, nil
}

func nextEnergy(e model.EnergyLevel) model.EnergyLevel {
	switch e {
	case model.EnergyLow:
		return model.EnergyMedium
	case model.EnergyMedium:
		return model.EnergyHigh
	default:
		return model.EnergyLow
	}
}

func (m *RootModel) selected() (model.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return model.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// View renders the UI
func (m RootModel) View() string {
	var b strings.Builder

	switch m.currentView {
	case viewWhatNow:
		b.WriteString(m.styles.Header.Render("daybrain — what now?"))
		b.WriteString("\n\n")
		b.WriteString(m.renderWhatNow())
	default:
		b.WriteString(m.styles.Header.Render("daybrain — tasks"))
		b.WriteString("\n\n")
		b.WriteString(m.renderTasks())
	}

	if m.adding {
		b.WriteString("\n")
		b.WriteString(m.styles.Input.Render(m.input.View()))
		b.WriteString("\n")
	}

	if m.errorMsg != "" {
		b.WriteString("\n" + m.styles.ErrorMsg.Render(m.errorMsg))
	} else if m.statusMsg != "" {
		b.WriteString("\n" + m.styles.Status.Render(m.statusMsg))
	}

	b.WriteString("\n" + m.renderHelp())
	return b.String()
}

func (m RootModel) renderTasks() string {
	if len(m.tasks) == 0 {
		return m.styles.HelpDesc.Render("  No tasks. Press a to add one.")
	}

	now := time.Now()
	var b strings.Builder
	for i, t := range m.tasks {
		line := m.renderTaskLine(t, now)
		if i == m.cursor {
			line = m.styles.TaskSelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m RootModel) renderTaskLine(t model.Task, now time.Time) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	title := t.Title
	indent := ""
	if t.ParentTaskID != nil {
		indent = "   "
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("  %s%s %s", indent, check, title))

	if t.DueDate != nil {
		due := formatDue(*t.DueDate, now)
		if t.IsOverdue(now) {
			parts = append(parts, m.styles.TaskOverdue.Render(due))
		} else {
			parts = append(parts, m.styles.DueDate.Render(due))
		}
	}

	switch t.Priority {
	case model.PriorityHigh:
		parts = append(parts, m.styles.PriorityHigh.Render("!high"))
	case model.PriorityLow:
		parts = append(parts, m.styles.PriorityLow.Render("!low"))
	}

	line := strings.Join(parts, "  ")
	if t.Completed {
		return m.styles.TaskDone.Render(line)
	}
	return m.styles.TaskNormal.Render(line)
}

func (m RootModel) renderWhatNow() string {
	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render(fmt.Sprintf("  energy: %s (e to cycle)", m.energy)))
	b.WriteString("\n\n")

	if len(m.recs) == 0 {
		b.WriteString(m.styles.HelpDesc.Render("  Nothing to suggest. Go outside."))
		return b.String()
	}

	now := time.Now()
	for i, t := range m.recs {
		b.WriteString(fmt.Sprintf("  %d. %s", i+1, m.renderTaskLine(t, now)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m RootModel) renderHelp() string {
	pairs := [][2]string{
		{"a", "add"}, {"tab", "done"}, {"d", "delete"}, {"u", "undo"},
		{"A", "archive"}, {"w", "what now"}, {"q", "quit"},
	}
	var parts []string
	for _, p := range pairs {
		parts = append(parts, m.styles.HelpKey.Render(p[0])+" "+m.styles.HelpDesc.Render(p[1]))
	}
	return m.styles.Footer.Render(strings.Join(parts, " · "))
}

func formatDue(due, now time.Time) string {
	today := model.DateOf(now)
	switch {
	case model.SameDay(due, now):
		return "today"
	case model.SameDay(due, today.AddDate(0, 0, 1)):
		return "tomorrow"
	case due.Year() == now.Year():
		return due.Format("Jan 2")
	default:
		return due.Format("Jan 2, 2006")
	}
}
