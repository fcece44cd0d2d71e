package erp

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

func (s *Service) ListClients(ctx context.Context) ([]Client, error) {
	return s.store.ListClients(ctx)
}

func (s *Service) SaveClient(ctx context.Context, client Client) (Client, error) {
	if client.ID == "" {
		client.ID = uuid.NewString()
		if err := s.store.InsertClient(ctx, client); err != nil {
			return Client{}, err
		}
		return client, nil
	}
	found, err := s.store.UpdateClient(ctx, client)
	if err != nil {
		return Client{}, err
	}
	if !found {
		return Client{}, ErrClientNotFound
	}
	return client, nil
}

func (s *Service) DeleteClient(ctx context.Context, id string) error {
	return s.store.DeleteClient(ctx, id)
}

func (s *Service) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	return s.store.ListSuppliers(ctx)
}

func (s *Service) SaveSupplier(ctx context.Context, supplier Supplier) (Supplier, error) {
	if supplier.ID == "" {
		supplier.ID = uuid.NewString()
		if err := s.store.InsertSupplier(ctx, supplier); err != nil {
			return Supplier{}, err
		}
		return supplier, nil
	}
	found, err := s.store.UpdateSupplier(ctx, supplier)
	if err != nil {
		return Supplier{}, err
	}
	if !found {
		return Supplier{}, ErrSupplierNotFound
	}
	return supplier, nil
}

func (s *Service) DeleteSupplier(ctx context.Context, id string) error {
	return s.store.DeleteSupplier(ctx, id)
}

func (s *Service) ListFiles(ctx context.Context, category string) ([]File, error) {
	if !ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	return s.store.ListFiles(ctx, category)
}

func (s *Service) SaveFile(ctx context.Context, file File) (File, error) {
	if !ValidCategory(file.Category) {
		return File{}, ErrInvalidCategory
	}
	file.ID = uuid.NewString()
	if file.UploadedAt.IsZero() {
		file.UploadedAt = s.now()
	}
	if err := s.store.InsertFile(ctx, file); err != nil {
		return File{}, err
	}
	return file, nil
}

func (s *Service) DeleteFile(ctx context.Context, id string) error {
	return s.store.DeleteFile(ctx, id)
}
