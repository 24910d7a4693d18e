package models

// Notification is a user-facing message produced by board operations
type Notification struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewNotification creates a notification of the given type
func NewNotification(noteType, text string) Notification {
	return Notification{Type: noteType, Text: text}
}

// Outcome is the result envelope of a board-service call.
// Data carries whatever the operation returns (the updated task, the
// refreshed board); Alerts are meant to be shown to the user as-is.
type Outcome struct {
	Status string         `json:"status"`
	Data   *OutcomeData   `json:"data,omitempty"`
	Alerts []Notification `json:"alerts"`
}

// OutcomeData holds the payload of a successful board-service call
type OutcomeData struct {
	Task  *Task  `json:"task,omitempty"`
	Board *Board `json:"board,omitempty"`
}

// Succeeded reports whether the call completed successfully
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSuccess
}

// Failure builds a failed outcome carrying a single error alert
func Failure(text string) Outcome {
	return Outcome{
		Status: StatusFailure,
		Alerts: []Notification{NewNotification(NoteError, text)},
	}
}
