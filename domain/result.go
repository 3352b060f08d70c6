package domain

// ErrorKind classifies why an operation did not go through.
// Kinds are structured tags, never derived from message substrings.
type ErrorKind string

const (
	KindNothingToCapture      ErrorKind = "nothing_to_capture"
	KindNoRemoteConfigured    ErrorKind = "no_remote_configured"
	KindUpdateConflict        ErrorKind = "update_conflict"
	KindBackupRejected        ErrorKind = "backup_rejected"
	KindAlreadyOnMain         ErrorKind = "already_on_main"
	KindUncommittedChanges    ErrorKind = "uncommitted_changes"
	KindMergeConflict         ErrorKind = "merge_conflict"
	KindRemoteAlreadyExists   ErrorKind = "remote_already_exists"
	KindUnderlyingToolFailure ErrorKind = "underlying_tool_failure"
)

// Result is the uniform outcome of every timeline operation. Raw engine
// errors never cross this boundary; every result carries a short
// human-readable sentence.
type Result struct {
	Ok      bool
	Kind    ErrorKind
	Message string

	// Operation-specific data, populated on success where it applies
	CommitID   string // short identifier of a new capture
	Received   int    // captures received by an update
	Sent       int    // captures sent by a backup
	Experiment string // branch name created or resolved
}

// OK builds a successful result with the given message
func OK(message string) Result {
	return Result{Ok: true, Message: message}
}

// Fail builds a failed result with a structured kind and message
func Fail(kind ErrorKind, message string) Result {
	return Result{Ok: false, Kind: kind, Message: message}
}
