package interest

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Note, error) {
	return s.store.List(ctx)
}

func (s *Service) Save(ctx context.Context, note Note) (Note, error) {
	note.UpdatedAt = s.now()
	if note.ID == "" {
		note.ID = uuid.NewString()
		note.CreatedAt = note.UpdatedAt
		if err := s.store.Insert(ctx, note); err != nil {
			return Note{}, err
		}
		return note, nil
	}
	found, err := s.store.Update(ctx, note)
	if err != nil {
		return Note{}, err
	}
	if !found {
		return Note{}, ErrNotFound
	}
	return note, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
