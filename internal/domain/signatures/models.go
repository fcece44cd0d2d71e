package signatures

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusCompleted Status = "completed"
	StatusDeclined  Status = "declined"
)

type Document struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	SignerName  string     `json:"signerName"`
	SignerEmail string     `json:"signerEmail"`
	CreatedBy   string     `json:"createdBy,omitempty"`
	Status      Status     `json:"status"`
	ProviderRef string     `json:"providerRef,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	SentAt      *time.Time `json:"sentAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
