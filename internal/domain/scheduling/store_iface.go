package scheduling

import (
	"context"
	"time"
)

type StoreAPI interface {
	List(ctx context.Context) ([]Shift, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]Shift, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]Shift, error)
	Insert(ctx context.Context, shift Shift) error
	Update(ctx context.Context, shift Shift) (bool, error)
	Delete(ctx context.Context, id string) error
}
