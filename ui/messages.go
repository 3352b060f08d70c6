package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"timeline/domain"
)

// refreshDoneMsg carries a fresh snapshot of the timeline
type refreshDoneMsg struct {
	snap    domain.StatusSnapshot
	changes domain.ChangeSet
	history []domain.HistoryEntry
	err     error
}

// operationDoneMsg is sent when a mutating operation completes
type operationDoneMsg struct {
	result domain.Result
}

// narrateDoneMsg carries a rendered activity summary
type narrateDoneMsg struct {
	summary domain.ActivitySummary
	err     error
}

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		snap, changes, err := m.timeline.StatusSnapshot(ctx)
		if err != nil {
			return refreshDoneMsg{err: err}
		}

		history, err := m.timeline.History(ctx, historyLimit)
		if err != nil {
			return refreshDoneMsg{err: err}
		}

		return refreshDoneMsg{snap: snap, changes: changes, history: history}
	}
}

func (m *Model) captureCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return operationDoneMsg{result: m.timeline.Capture(context.Background(), message)}
	}
}

func (m *Model) updateCmd() tea.Cmd {
	return func() tea.Msg {
		return operationDoneMsg{result: m.timeline.Update(context.Background())}
	}
}

func (m *Model) backupCmd() tea.Cmd {
	return func() tea.Msg {
		return operationDoneMsg{result: m.timeline.Backup(context.Background())}
	}
}

func (m *Model) narrateCmd() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.timeline.Narrate(context.Background(), m.days)
		return narrateDoneMsg{summary: summary, err: err}
	}
}
