package domain

// Kinds of notification the moderation team receives.
const (
	NotifySubmission = "submission"
	NotifyReport     = "report"
)

// Notification is one message for the moderation team.
type Notification struct {
	Kind    string
	Subject string
	Fields  map[string]string
}
