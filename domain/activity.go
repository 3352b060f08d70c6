package domain

// CapturedFiles pairs a history entry with the files it touched.
// The file list comes from diffing the capture against its parent; the very
// first capture in a repository has no parent and contributes no files.
type CapturedFiles struct {
	Entry HistoryEntry
	Files []string
}

// ActivityWindow is a time-bounded slice of captures plus per-capture files
type ActivityWindow struct {
	Days     int
	Captures []CapturedFiles
}

// FileCount tallies how often a file was touched inside a window
type FileCount struct {
	Path     string // full path as reported by the engine
	Name     string // basename, used for the narrative
	Captures int
}

// DayCount tallies captures for a single weekday
type DayCount struct {
	Day      string
	Captures int
}

// ActivityStats are the aggregated numbers behind a narrative
type ActivityStats struct {
	TotalCaptures int
	ActiveDays    int
	TopFiles      []FileCount
	BusiestDay    *DayCount
}

// ActivitySummary is the narrated result returned to callers
type ActivitySummary struct {
	Stats     ActivityStats
	Narrative string
}
