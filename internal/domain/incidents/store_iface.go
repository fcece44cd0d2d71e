package incidents

import "context"

type StoreAPI interface {
	List(ctx context.Context) ([]Incident, error)
	Recent(ctx context.Context, limit int) ([]Incident, error)
	Insert(ctx context.Context, incident Incident) error
	Update(ctx context.Context, incident Incident) (bool, error)
	Delete(ctx context.Context, id string) error
}
