package services

import (
	"fmt"
	"strings"

	"timeline/domain"
)

// Status glyphs (Unicode)
const (
	GlyphBase       = "⧗" // always present on a timeline
	GlyphExperiment = "⎇" // followed by the experiment name
	GlyphChanges    = "✎" // followed by the pending change count
	GlyphAhead      = "↑" // captures not yet backed up
	GlyphBehind     = "↓" // captures not yet received
	GlyphSynced     = "✓" // nothing pending in either direction
	GlyphNoTimeline = "∅" // path is not under timeline management
)

// ProjectStatus renders a snapshot and change set into an ordered list of
// glyph tokens. The order is a display contract: base, experiment name,
// change count, ahead, behind. A single synced marker appears only when
// none of the change/ahead/behind markers applied.
func ProjectStatus(snap domain.StatusSnapshot, changes domain.ChangeSet) []string {
	if !snap.IsRepository {
		return []string{GlyphNoTimeline}
	}

	tokens := []string{GlyphBase}

	if snap.Experiment != "" {
		tokens = append(tokens, fmt.Sprintf("%s %s", GlyphExperiment, snap.Experiment))
	}

	busy := false
	if changes.HasChanges() {
		tokens = append(tokens, fmt.Sprintf("%s %d", GlyphChanges, changes.Total()))
		busy = true
	}
	if snap.Ahead > 0 {
		tokens = append(tokens, fmt.Sprintf("%s%d", GlyphAhead, snap.Ahead))
		busy = true
	}
	if snap.Behind > 0 {
		tokens = append(tokens, fmt.Sprintf("%s%d", GlyphBehind, snap.Behind))
		busy = true
	}

	if !busy {
		tokens = append(tokens, GlyphSynced)
	}

	return tokens
}

// RenderStatusLine joins status tokens into the compact line shown in
// status bars
func RenderStatusLine(tokens []string) string {
	return strings.Join(tokens, "  ")
}
