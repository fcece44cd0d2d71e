package notifications

import "time"

type Type string

const (
	TypeShiftAssigned      Type = "shift_assigned"
	TypeAlertRaised        Type = "alert_raised"
	TypeSignatureCompleted Type = "signature_completed"
)

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      Type      `json:"type"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
