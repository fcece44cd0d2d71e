package inventory

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]MedicalSupply, error) {
	return s.store.List(ctx)
}

// LowStock filters the inventory down to supplies at or below their reorder
// level.
func (s *Service) LowStock(ctx context.Context) ([]MedicalSupply, error) {
	supplies, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	var low []MedicalSupply
	for _, supply := range supplies {
		if supply.NeedsReorder() {
			low = append(low, supply)
		}
	}
	return low, nil
}

func (s *Service) Save(ctx context.Context, supply MedicalSupply) (MedicalSupply, error) {
	if supply.ID == "" {
		supply.ID = uuid.NewString()
		if err := s.store.Insert(ctx, supply); err != nil {
			return MedicalSupply{}, err
		}
		return supply, nil
	}
	found, err := s.store.Update(ctx, supply)
	if err != nil {
		return MedicalSupply{}, err
	}
	if !found {
		return MedicalSupply{}, ErrNotFound
	}
	return supply, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
