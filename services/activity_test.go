package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline/domain"
)

// capture builds a CapturedFiles at the given local time touching files
func capture(ts time.Time, files ...string) domain.CapturedFiles {
	return domain.CapturedFiles{
		Entry: domain.HistoryEntry{
			Hash:      "deadbeef",
			Timestamp: ts,
		},
		Files: files,
	}
}

func localDate(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}

func TestSummarizeActivity_EmptyWindow(t *testing.T) {
	stats := SummarizeActivity(domain.ActivityWindow{Days: 7}, 5)

	assert.Equal(t, 0, stats.TotalCaptures)
	assert.Equal(t, 0, stats.ActiveDays)
	assert.Nil(t, stats.BusiestDay)
	assert.Empty(t, stats.TopFiles)
}

func TestSummarizeActivity_BusiestDay(t *testing.T) {
	// 2026-08-24 is a Monday, 2026-08-25 a Tuesday
	window := domain.ActivityWindow{Days: 7, Captures: []domain.CapturedFiles{
		capture(localDate(2026, 8, 24, 10), "a.md"),
		capture(localDate(2026, 8, 25, 9), "a.md"),
		capture(localDate(2026, 8, 25, 11), "b.md"),
		capture(localDate(2026, 8, 25, 14), "b.md"),
		capture(localDate(2026, 8, 25, 16), "c.md"),
	}}

	stats := SummarizeActivity(window, 5)

	assert.Equal(t, 5, stats.TotalCaptures)
	assert.Equal(t, 2, stats.ActiveDays)
	require.NotNil(t, stats.BusiestDay)
	assert.Equal(t, "Tuesday", stats.BusiestDay.Day)
	assert.Equal(t, 4, stats.BusiestDay.Captures)
}

func TestSummarizeActivity_BusiestDayTieKeepsFirstEncountered(t *testing.T) {
	window := domain.ActivityWindow{Days: 7, Captures: []domain.CapturedFiles{
		capture(localDate(2026, 8, 24, 10), "a.md"), // Monday
		capture(localDate(2026, 8, 25, 10), "a.md"), // Tuesday
	}}

	stats := SummarizeActivity(window, 5)

	require.NotNil(t, stats.BusiestDay)
	assert.Equal(t, "Monday", stats.BusiestDay.Day)
}

func TestSummarizeActivity_TopFilesOrderAndTieBreak(t *testing.T) {
	window := domain.ActivityWindow{Days: 7, Captures: []domain.CapturedFiles{
		capture(localDate(2026, 8, 24, 9), "a.md", "b.md"),
		capture(localDate(2026, 8, 24, 10), "b.md"),
		capture(localDate(2026, 8, 24, 11), "a.md", "c.md"),
	}}

	stats := SummarizeActivity(window, 5)

	require.Len(t, stats.TopFiles, 3)
	// a.md and b.md both count 2; a.md was encountered first
	assert.Equal(t, "a.md", stats.TopFiles[0].Path)
	assert.Equal(t, 2, stats.TopFiles[0].Captures)
	assert.Equal(t, "b.md", stats.TopFiles[1].Path)
	assert.Equal(t, 2, stats.TopFiles[1].Captures)
	assert.Equal(t, "c.md", stats.TopFiles[2].Path)
	assert.Equal(t, 1, stats.TopFiles[2].Captures)
}

func TestSummarizeActivity_TopFilesTruncated(t *testing.T) {
	window := domain.ActivityWindow{Days: 7, Captures: []domain.CapturedFiles{
		capture(localDate(2026, 8, 24, 9), "a.md", "b.md", "c.md", "d.md"),
	}}

	stats := SummarizeActivity(window, 2)

	require.Len(t, stats.TopFiles, 2)
	assert.Equal(t, "a.md", stats.TopFiles[0].Path)
	assert.Equal(t, "b.md", stats.TopFiles[1].Path)
}

func TestSummarizeActivity_HiddenPathsExcluded(t *testing.T) {
	window := domain.ActivityWindow{Days: 7, Captures: []domain.CapturedFiles{
		capture(localDate(2026, 8, 24, 9),
			"notes/a.md", ".obsidian/workspace.json", "notes/.trash/b.md"),
	}}

	stats := SummarizeActivity(window, 5)

	require.Len(t, stats.TopFiles, 1)
	assert.Equal(t, "notes/a.md", stats.TopFiles[0].Path)
	assert.Equal(t, "a.md", stats.TopFiles[0].Name)
}

func TestSummarizeActivity_CaptureCountUnaffectedByHiddenFiles(t *testing.T) {
	window := domain.ActivityWindow{Days: 7, Captures: []domain.CapturedFiles{
		capture(localDate(2026, 8, 24, 9), ".obsidian/workspace.json"),
	}}

	stats := SummarizeActivity(window, 5)

	assert.Equal(t, 1, stats.TotalCaptures)
	assert.Empty(t, stats.TopFiles)
}

func TestIsHiddenPath(t *testing.T) {
	tests := []struct {
		path   string
		hidden bool
	}{
		{"notes/a.md", false},
		{".gitignore", true},
		{".obsidian/workspace.json", true},
		{"notes/.trash/b.md", true},
		{"notes/archive/old.md", false},
		{"dotted.name/file.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.hidden, isHiddenPath(tt.path))
		})
	}
}

func TestRenderNarrative_Empty(t *testing.T) {
	narrative := RenderNarrative(domain.ActivityStats{})

	assert.Equal(t, NoActivityNarrative, narrative)
}

func TestRenderNarrative_Full(t *testing.T) {
	stats := domain.ActivityStats{
		TotalCaptures: 5,
		ActiveDays:    2,
		BusiestDay:    &domain.DayCount{Day: "Tuesday", Captures: 4},
		TopFiles: []domain.FileCount{
			{Path: "notes/a.md", Name: "a.md", Captures: 3},
		},
	}

	narrative := RenderNarrative(stats)

	assert.Contains(t, narrative, "You made 5 captures across 2 active days.")
	assert.Contains(t, narrative, "Tuesday was your busiest day with 4 captures.")
	assert.Contains(t, narrative, "Your most-edited file was a.md (3 captures).")
}

func TestRenderNarrative_SingularForms(t *testing.T) {
	stats := domain.ActivityStats{
		TotalCaptures: 1,
		ActiveDays:    1,
		BusiestDay:    &domain.DayCount{Day: "Monday", Captures: 1},
		TopFiles: []domain.FileCount{
			{Path: "a.md", Name: "a.md", Captures: 1},
		},
	}

	narrative := RenderNarrative(stats)

	assert.Contains(t, narrative, "You made 1 capture across 1 active day.")
	// A single-capture day is not worth calling busiest
	assert.NotContains(t, narrative, "busiest")
	assert.Contains(t, narrative, "a.md (1 capture).")
}

func TestNarrate_EmptyWindowIsSuccess(t *testing.T) {
	engine := newFakeEngine()
	tl := NewTimeline(engine, DefaultConfig())

	summary, err := tl.Narrate(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Stats.TotalCaptures)
	assert.Equal(t, NoActivityNarrative, summary.Narrative)
}

func TestNarrate_CollectsFilesPerCapture(t *testing.T) {
	engine := newFakeEngine()
	engine.log = []domain.HistoryEntry{
		{Hash: "aaa", Timestamp: localDate(2026, 8, 24, 9)},
		{Hash: "bbb", Timestamp: localDate(2026, 8, 24, 11)},
	}
	engine.commitFiles = map[string][]string{
		"aaa": {"notes/a.md"},
		"bbb": {"notes/a.md", "notes/b.md"},
	}
	tl := NewTimeline(engine, DefaultConfig())

	summary, err := tl.Narrate(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Stats.TotalCaptures)
	require.NotEmpty(t, summary.Stats.TopFiles)
	assert.Equal(t, "notes/a.md", summary.Stats.TopFiles[0].Path)
	assert.Equal(t, 2, summary.Stats.TopFiles[0].Captures)
}
