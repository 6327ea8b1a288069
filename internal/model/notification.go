package model

// Severity tags a notification for styling.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a transient dashboard message.  It only lives in the web
// tier's memory; nothing is synced with the backend.
type Notification struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TimeLabel   string   `json:"time"`
	Severity    Severity `json:"type"`
	Read        bool     `json:"read"`
}
