package inventory

import "context"

type StoreAPI interface {
	List(ctx context.Context) ([]MedicalSupply, error)
	Insert(ctx context.Context, supply MedicalSupply) error
	Update(ctx context.Context, supply MedicalSupply) (bool, error)
	Delete(ctx context.Context, id string) error
}
