package signatures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fleetops/internal/domain/notifications"
)

var (
	ErrAlreadySent  = errors.New("document already sent")
	ErrNotCompleted = errors.New("document is not awaiting completion")
)

// Notifier tells the document creator about the signing outcome.
type Notifier interface {
	Notify(ctx context.Context, userID, email string, kind notifications.Type, subject, body string) error
}

type Service struct {
	store    StoreAPI
	provider Provider
	notifier Notifier
	now      func() time.Time
}

func NewService(store StoreAPI, provider Provider, notifier Notifier) *Service {
	return &Service{store: store, provider: provider, notifier: notifier, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Document, error) {
	return s.store.List(ctx)
}

func (s *Service) Create(ctx context.Context, doc Document) (Document, error) {
	doc.ID = uuid.NewString()
	doc.Status = StatusDraft
	doc.CreatedAt = s.now()
	doc.ProviderRef = ""
	doc.SentAt = nil
	doc.CompletedAt = nil
	if err := s.store.Insert(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Send hands a draft to the signature provider and records the
// provider reference. A document can only be sent once.
func (s *Service) Send(ctx context.Context, id string) (Document, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return Document{}, err
	}
	if doc.Status != StatusDraft {
		return Document{}, ErrAlreadySent
	}

	ref, err := s.provider.Send(ctx, doc)
	if err != nil {
		return Document{}, err
	}

	now := s.now()
	doc.Status = StatusSent
	doc.ProviderRef = ref
	doc.SentAt = &now
	if _, err := s.store.Update(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Complete records the signer's decision on a sent document.
func (s *Service) Complete(ctx context.Context, id string, signed bool) (Document, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return Document{}, err
	}
	if doc.Status != StatusSent {
		return Document{}, ErrNotCompleted
	}

	now := s.now()
	if signed {
		doc.Status = StatusCompleted
	} else {
		doc.Status = StatusDeclined
	}
	doc.CompletedAt = &now
	if _, err := s.store.Update(ctx, doc); err != nil {
		return Document{}, err
	}

	if s.notifier != nil && doc.Status == StatusCompleted && doc.CreatedBy != "" {
		subject := "Document signed"
		body := fmt.Sprintf("%q was signed by %s.", doc.Title, doc.SignerName)
		if err := s.notifier.Notify(ctx, doc.CreatedBy, "", notifications.TypeSignatureCompleted, subject, body); err != nil {
			slog.Warn("signature completion not notified", "documentId", doc.ID, "error", err)
		}
	}
	return doc, nil
}
