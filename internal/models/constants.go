package models

// BugIDPlaceholder is substituted in IssueTracker.URL by the captured bug id
const BugIDPlaceholder = "%BUGID%"

// Outcome statuses reported by the board service
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Notification types
const (
	NoteSuccess = "success"
	NoteError   = "error"
	NoteInfo    = "info"
	NoteWarn    = "warn"
)
