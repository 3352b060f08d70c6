package ui

import (
	"fmt"
	"strings"

	"timeline/services"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.state == stateCapturing && m.form != nil {
		return titleStyle.Render("Capture") + "\n" + m.form.View()
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Timeline"))
	b.WriteString("\n")

	tokens := services.ProjectStatus(m.snap, m.changes)
	b.WriteString(statusBarStyle.Render(services.RenderStatusLine(tokens)))
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(m.spinner.View())
		b.WriteString(dimStyle.Render(" working..."))
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	} else if m.statusMsg != "" {
		b.WriteString(messageStyle.Render(m.statusMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderChanges())
	b.WriteString(m.renderHistory())

	if m.narrative != "" {
		b.WriteString(titleStyle.Render("Narrate"))
		b.WriteString("\n")
		b.WriteString(normalStyle.Render(m.narrative))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("c capture · u update · b backup · n narrate · r refresh · q quit"))
	return b.String()
}

func (m *Model) renderChanges() string {
	if !m.changes.HasChanges() {
		return ""
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d pending %s",
		m.changes.Total(), pluralize(m.changes.Total(), "change", "changes"))))
	b.WriteString("\n\n")
	return b.String()
}

func (m *Model) renderHistory() string {
	if len(m.history) == 0 {
		return dimStyle.Render("No captures yet.") + "\n\n"
	}

	var b strings.Builder
	for _, entry := range m.history {
		message := entry.Message
		if message == "" {
			message = "(no message)"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			dimStyle.Render(entry.ShortHash),
			dimStyle.Render(entry.Timestamp.Local().Format("Jan 02 15:04")),
			normalStyle.Render(message)))
	}
	b.WriteString("\n")
	return b.String()
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
