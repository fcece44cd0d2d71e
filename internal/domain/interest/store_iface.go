package interest

import "context"

type StoreAPI interface {
	List(ctx context.Context) ([]Note, error)
	Insert(ctx context.Context, note Note) error
	Update(ctx context.Context, note Note) (bool, error)
	Delete(ctx context.Context, id string) error
}
