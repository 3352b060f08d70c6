package services

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"timeline/domain"
)

// NoActivityNarrative is the fixed sentence returned for an empty window
const NoActivityNarrative = "No captures in this period yet. The timeline is quiet."

// Narrate aggregates the capture activity of the last windowDays days and
// renders it as a short paragraph. An empty window is a success with zeroed
// statistics, not an error.
func (t *Timeline) Narrate(ctx context.Context, windowDays int) (domain.ActivitySummary, error) {
	window, err := t.activityWindow(ctx, windowDays)
	if err != nil {
		return domain.ActivitySummary{}, err
	}

	stats := SummarizeActivity(window, t.cfg.TopFiles)
	return domain.ActivitySummary{
		Stats:     stats,
		Narrative: RenderNarrative(stats),
	}, nil
}

// activityWindow collects the captures of the window together with the
// files each one touched
func (t *Timeline) activityWindow(ctx context.Context, windowDays int) (domain.ActivityWindow, error) {
	since := time.Now().AddDate(0, 0, -windowDays)
	entries, err := t.engine.LogSince(ctx, since)
	if err != nil {
		return domain.ActivityWindow{}, err
	}

	window := domain.ActivityWindow{Days: windowDays}
	for _, entry := range entries {
		files, err := t.engine.CommitFiles(ctx, entry.Hash)
		if err != nil {
			return domain.ActivityWindow{}, err
		}
		window.Captures = append(window.Captures, domain.CapturedFiles{
			Entry: entry,
			Files: files,
		})
	}
	return window, nil
}

// SummarizeActivity computes the statistics behind a narrative. Pure
// transformation, no engine access.
//
// Tie-breaks are stable by construction: the busiest weekday resolves to
// whichever weekday was encountered first while bucketing, and equal file
// tallies keep their first-encounter order.
func SummarizeActivity(window domain.ActivityWindow, topN int) domain.ActivityStats {
	stats := domain.ActivityStats{
		TotalCaptures: len(window.Captures),
		TopFiles:      []domain.FileCount{},
	}
	if stats.TotalCaptures == 0 {
		return stats
	}

	dayCounts := make(map[string]int)
	var dayOrder []string
	dates := make(map[string]struct{})
	fileCounts := make(map[string]int)
	var fileOrder []string

	for _, capture := range window.Captures {
		local := capture.Entry.Timestamp.Local()

		weekday := local.Weekday().String()
		if _, seen := dayCounts[weekday]; !seen {
			dayOrder = append(dayOrder, weekday)
		}
		dayCounts[weekday]++

		dates[local.Format("2006-01-02")] = struct{}{}

		for _, file := range capture.Files {
			if isHiddenPath(file) {
				continue
			}
			if _, seen := fileCounts[file]; !seen {
				fileOrder = append(fileOrder, file)
			}
			fileCounts[file]++
		}
	}

	stats.ActiveDays = len(dates)

	// Strictly-greater comparison keeps the first-encountered weekday on ties
	busiest := domain.DayCount{Day: dayOrder[0], Captures: dayCounts[dayOrder[0]]}
	for _, day := range dayOrder[1:] {
		if dayCounts[day] > busiest.Captures {
			busiest = domain.DayCount{Day: day, Captures: dayCounts[day]}
		}
	}
	stats.BusiestDay = &busiest

	files := make([]domain.FileCount, 0, len(fileOrder))
	for _, file := range fileOrder {
		files = append(files, domain.FileCount{
			Path:     file,
			Name:     path.Base(file),
			Captures: fileCounts[file],
		})
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Captures > files[j].Captures
	})
	if len(files) > topN {
		files = files[:topN]
	}
	stats.TopFiles = files

	return stats
}

// isHiddenPath reports whether any segment of the path is a dotfile or
// hidden system artifact
func isHiddenPath(p string) bool {
	for _, segment := range strings.Split(p, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

// RenderNarrative turns activity statistics into a natural-language
// paragraph. The busiest weekday is only worth mentioning when it holds
// more than one capture; the top file only when one exists.
func RenderNarrative(stats domain.ActivityStats) string {
	if stats.TotalCaptures == 0 {
		return NoActivityNarrative
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You made %d %s across %d active %s.",
		stats.TotalCaptures, plural(stats.TotalCaptures, "capture", "captures"),
		stats.ActiveDays, plural(stats.ActiveDays, "day", "days"))

	if stats.BusiestDay != nil && stats.BusiestDay.Captures > 1 {
		fmt.Fprintf(&b, " %s was your busiest day with %d captures.",
			stats.BusiestDay.Day, stats.BusiestDay.Captures)
	}

	if len(stats.TopFiles) > 0 {
		top := stats.TopFiles[0]
		fmt.Fprintf(&b, " Your most-edited file was %s (%d %s).",
			top.Name, top.Captures, plural(top.Captures, "capture", "captures"))
	}

	return b.String()
}
