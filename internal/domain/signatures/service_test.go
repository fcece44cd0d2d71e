package signatures

import (
	"context"
	"testing"

	"fleetops/internal/domain/notifications"
)

type fakeStore struct {
	docs map[string]Document
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string]Document{}}
}

func (f *fakeStore) List(_ context.Context) ([]Document, error) {
	var out []Document
	for _, d := range f.docs {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (Document, error) {
	d, ok := f.docs[id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return d, nil
}

func (f *fakeStore) Insert(_ context.Context, doc Document) error {
	f.docs[doc.ID] = doc
	return nil
}

func (f *fakeStore) Update(_ context.Context, doc Document) (bool, error) {
	if _, ok := f.docs[doc.ID]; !ok {
		return false, nil
	}
	f.docs[doc.ID] = doc
	return true, nil
}

type sentNotification struct {
	UserID string
	Kind   notifications.Type
}

type fakeNotifier struct {
	sent []sentNotification
}

func (f *fakeNotifier) Notify(_ context.Context, userID, _ string, kind notifications.Type, _, _ string) error {
	f.sent = append(f.sent, sentNotification{UserID: userID, Kind: kind})
	return nil
}

func TestCompleteNotifiesCreator(t *testing.T) {
	notifier := &fakeNotifier{}
	service := NewService(newFakeStore(), SimulatedProvider{}, notifier)
	ctx := context.Background()

	doc, err := service.Create(ctx, Document{Title: "Contract", SignerName: "Ana", SignerEmail: "ana@example.com", CreatedBy: "user-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.Send(ctx, doc.ID); err != nil {
		t.Fatalf("send: %v", err)
	}

	completed, err := service.Complete(ctx, doc.ID, true)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != StatusCompleted {
		t.Fatalf("expected completed status, got %s", completed.Status)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.sent))
	}
	if notifier.sent[0].Kind != notifications.TypeSignatureCompleted {
		t.Fatalf("expected %s, got %s", notifications.TypeSignatureCompleted, notifier.sent[0].Kind)
	}
	if notifier.sent[0].UserID != "user-1" {
		t.Fatalf("expected the creator to be notified, got %s", notifier.sent[0].UserID)
	}
}

func TestDeclineDoesNotNotify(t *testing.T) {
	notifier := &fakeNotifier{}
	service := NewService(newFakeStore(), SimulatedProvider{}, notifier)
	ctx := context.Background()

	doc, err := service.Create(ctx, Document{Title: "Contract", SignerName: "Ana", SignerEmail: "ana@example.com", CreatedBy: "user-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.Send(ctx, doc.ID); err != nil {
		t.Fatalf("send: %v", err)
	}

	declined, err := service.Complete(ctx, doc.ID, false)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if declined.Status != StatusDeclined {
		t.Fatalf("expected declined status, got %s", declined.Status)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("expected no notification on decline, got %d", len(notifier.sent))
	}
}

func TestSendTwiceRejected(t *testing.T) {
	service := NewService(newFakeStore(), SimulatedProvider{}, nil)
	ctx := context.Background()

	doc, err := service.Create(ctx, Document{Title: "Contract", SignerName: "Ana", SignerEmail: "ana@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.Send(ctx, doc.ID); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := service.Send(ctx, doc.ID); err != ErrAlreadySent {
		t.Fatalf("expected ErrAlreadySent, got %v", err)
	}
}

func TestCompleteBeforeSendRejected(t *testing.T) {
	service := NewService(newFakeStore(), SimulatedProvider{}, nil)
	ctx := context.Background()

	doc, err := service.Create(ctx, Document{Title: "Contract", SignerName: "Ana", SignerEmail: "ana@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.Complete(ctx, doc.ID, true); err != ErrNotCompleted {
		t.Fatalf("expected ErrNotCompleted, got %v", err)
	}
}
