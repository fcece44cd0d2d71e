package notifications

import "context"

// Mailer delivers a single message. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}
