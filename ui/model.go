package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"timeline/domain"
	"timeline/logging"
	"timeline/services"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(1, 0)

	statusBarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(1, 0)
)

type uiState int

const (
	stateBrowse uiState = iota
	stateCapturing
)

// historyLimit bounds how many captures the panel shows
const historyLimit = 12

// Model is the interactive timeline panel
type Model struct {
	timeline *services.Timeline
	days     int

	state   uiState
	busy    bool
	spinner spinner.Model

	captureMessage string
	form           *huh.Form

	snap      domain.StatusSnapshot
	changes   domain.ChangeSet
	history   []domain.HistoryEntry
	narrative string

	statusMsg string
	err       error

	width  int
	height int
}

// NewModel creates the panel over the given timeline. days is the narrate
// window size.
func NewModel(timeline *services.Timeline, days int) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &Model{
		timeline: timeline,
		days:     days,
		spinner:  s,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.spinner.Tick)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.snap = msg.snap
		m.changes = msg.changes
		m.history = msg.history
		return m, nil

	case operationDoneMsg:
		m.busy = false
		m.statusMsg = msg.result.Message
		logging.Logger.Debug("Panel operation finished",
			"ok", msg.result.Ok, "kind", string(msg.result.Kind))
		return m, m.refreshCmd()

	case narrateDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.narrative = msg.summary.Narrative
		return m, nil
	}

	if m.state == stateCapturing {
		return m.updateCaptureForm(msg)
	}
	return m.updateBrowse(msg)
}

// updateBrowse handles keys in the main view
func (m *Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.busy {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.statusMsg = ""
		return m, m.refreshCmd()
	case "c":
		return m.startCaptureForm()
	case "u":
		m.busy = true
		m.statusMsg = ""
		return m, tea.Batch(m.updateCmd(), m.spinner.Tick)
	case "b":
		m.busy = true
		m.statusMsg = ""
		return m, tea.Batch(m.backupCmd(), m.spinner.Tick)
	case "n":
		if m.narrative != "" {
			m.narrative = ""
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.narrateCmd(), m.spinner.Tick)
	}
	return m, nil
}
