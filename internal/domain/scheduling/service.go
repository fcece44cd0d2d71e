package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, employeeID string) ([]Shift, error) {
	if employeeID != "" {
		return s.store.ListForEmployee(ctx, employeeID)
	}
	return s.store.List(ctx)
}

// ListBetween returns every shift overlapping the window, for rosters.
func (s *Service) ListBetween(ctx context.Context, from, to time.Time) ([]Shift, error) {
	return s.store.ListBetween(ctx, from, to)
}

// CheckAndSave validates the candidate, rejects it with a *ConflictError when
// it overlaps an existing shift of the same employee, and persists it
// otherwise. Nothing is written on failure.
func (s *Service) CheckAndSave(ctx context.Context, candidate Shift) (Shift, error) {
	if err := Validate(candidate); err != nil {
		return Shift{}, err
	}

	existing, err := s.store.ListForEmployee(ctx, candidate.EmployeeID)
	if err != nil {
		return Shift{}, err
	}
	if conflict, ok := FindConflict(candidate, existing); ok {
		return Shift{}, &ConflictError{
			EmployeeID:    candidate.EmployeeID,
			ConflictStart: conflict.Start,
			ConflictEnd:   conflict.End,
		}
	}

	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
		if err := s.store.Insert(ctx, candidate); err != nil {
			return Shift{}, err
		}
		return candidate, nil
	}

	found, err := s.store.Update(ctx, candidate)
	if err != nil {
		return Shift{}, err
	}
	if !found {
		return Shift{}, ErrNotFound
	}
	return candidate, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
