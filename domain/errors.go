package domain

import "errors"

// Structured sentinels returned by the engine adapter. Callers classify
// failures with errors.Is instead of sniffing tool output, which breaks
// across git versions and locales.
var (
	ErrMergeConflict = errors.New("merge conflict")
	ErrPushRejected  = errors.New("push rejected")
	ErrNoUpstream    = errors.New("no upstream configured")
)
