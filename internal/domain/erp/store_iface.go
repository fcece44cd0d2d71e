package erp

import "context"

type StoreAPI interface {
	ListClients(ctx context.Context) ([]Client, error)
	InsertClient(ctx context.Context, client Client) error
	UpdateClient(ctx context.Context, client Client) (bool, error)
	DeleteClient(ctx context.Context, id string) error

	ListSuppliers(ctx context.Context) ([]Supplier, error)
	InsertSupplier(ctx context.Context, supplier Supplier) error
	UpdateSupplier(ctx context.Context, supplier Supplier) (bool, error)
	DeleteSupplier(ctx context.Context, id string) error

	ListFiles(ctx context.Context, category string) ([]File, error)
	InsertFile(ctx context.Context, file File) error
	DeleteFile(ctx context.Context, id string) error
}
