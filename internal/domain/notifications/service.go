package notifications

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	store  StoreAPI
	mailer Mailer
	from   string
	now    func() time.Time
}

func NewService(store StoreAPI, mailer Mailer, from string) *Service {
	return &Service{store: store, mailer: mailer, from: from, now: time.Now}
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]Notification, error) {
	return s.store.ListForUser(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, id, userID string) error {
	found, err := s.store.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// Notify records an in-app notification and best-effort mails the
// recipient. A mail failure never fails the operation that triggered
// the notification.
func (s *Service) Notify(ctx context.Context, userID, email string, kind Type, subject, body string) error {
	n := Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      kind,
		Subject:   subject,
		Body:      body,
		CreatedAt: s.now(),
	}
	if err := s.store.Insert(ctx, n); err != nil {
		return err
	}
	if email != "" {
		if err := s.mailer.Send(ctx, s.from, email, subject, body); err != nil {
			slog.Warn("notification email failed", "type", kind, "error", err)
		}
	}
	return nil
}
