package notifications

import "context"

type StoreAPI interface {
	ListForUser(ctx context.Context, userID string) ([]Notification, error)
	Insert(ctx context.Context, n Notification) error
	MarkRead(ctx context.Context, id, userID string) (bool, error)
}
