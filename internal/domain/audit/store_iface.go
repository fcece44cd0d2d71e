package audit

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, event Event) error
	List(ctx context.Context, limit int) ([]Event, error)
}
