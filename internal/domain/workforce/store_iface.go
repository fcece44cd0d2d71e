package workforce

import "context"

type StoreAPI interface {
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, id string) (Employee, error)
	Insert(ctx context.Context, employee Employee) error
	Update(ctx context.Context, employee Employee) (bool, error)
	Delete(ctx context.Context, id string) error
}
