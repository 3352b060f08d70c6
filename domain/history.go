package domain

import "time"

// HistoryEntry is a single capture as reported by the engine.
// Entries are immutable once created; ordering is reverse-chronological.
type HistoryEntry struct {
	Hash      string
	ShortHash string
	Message   string
	Author    string
	Timestamp time.Time
}

// ShortHashOf abbreviates a full commit identifier to its first 7 characters
func ShortHashOf(hash string) string {
	if len(hash) <= 7 {
		return hash
	}
	return hash[:7]
}
