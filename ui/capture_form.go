package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// startCaptureForm switches into the capture form, refusing early when
// there is nothing to capture
func (m *Model) startCaptureForm() (tea.Model, tea.Cmd) {
	if !m.changes.HasChanges() {
		m.statusMsg = "Nothing to capture. Your timeline is already up to date."
		return m, nil
	}

	m.captureMessage = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Capture message").
				Placeholder("What changed?").
				Value(&m.captureMessage),
		),
	)
	m.state = stateCapturing
	return m, m.form.Init()
}

// updateCaptureForm drives the huh form until it completes or aborts
func (m *Model) updateCaptureForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = stateBrowse
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		message := m.captureMessage
		if message == "" {
			message = "timeline capture"
		}
		m.state = stateBrowse
		m.form = nil
		m.busy = true
		return m, tea.Batch(m.captureCmd(message), m.spinner.Tick)
	case huh.StateAborted:
		m.state = stateBrowse
		m.form = nil
		return m, nil
	}

	return m, cmd
}
