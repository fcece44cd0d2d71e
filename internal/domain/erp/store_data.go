package erp

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrClientNotFound   = errors.New("client not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrInvalidCategory  = errors.New("invalid file category")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListClients(ctx context.Context) ([]Client, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, tax_id, address, email, phone
    FROM erp_clients
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var client Client
		if err := rows.Scan(&client.ID, &client.Name, &client.TaxID, &client.Address, &client.Email, &client.Phone); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (s *Store) InsertClient(ctx context.Context, client Client) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO erp_clients (id, name, tax_id, address, email, phone)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, client.ID, client.Name, client.TaxID, client.Address, client.Email, client.Phone)
	return err
}

func (s *Store) UpdateClient(ctx context.Context, client Client) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE erp_clients SET name = $2, tax_id = $3, address = $4, email = $5, phone = $6
    WHERE id = $1
  `, client.ID, client.Name, client.TaxID, client.Address, client.Email, client.Phone)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteClient(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM erp_clients WHERE id = $1", id)
	return err
}

func (s *Store) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, tax_id, address, email, phone
    FROM erp_suppliers
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		var supplier Supplier
		if err := rows.Scan(&supplier.ID, &supplier.Name, &supplier.TaxID, &supplier.Address, &supplier.Email, &supplier.Phone); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, rows.Err()
}

func (s *Store) InsertSupplier(ctx context.Context, supplier Supplier) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO erp_suppliers (id, name, tax_id, address, email, phone)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, supplier.ID, supplier.Name, supplier.TaxID, supplier.Address, supplier.Email, supplier.Phone)
	return err
}

func (s *Store) UpdateSupplier(ctx context.Context, supplier Supplier) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE erp_suppliers SET name = $2, tax_id = $3, address = $4, email = $5, phone = $6
    WHERE id = $1
  `, supplier.ID, supplier.Name, supplier.TaxID, supplier.Address, supplier.Email, supplier.Phone)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteSupplier(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM erp_suppliers WHERE id = $1", id)
	return err
}

func (s *Store) ListFiles(ctx context.Context, category string) ([]File, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, category, uploaded_at, COALESCE(invoice_number, '')
    FROM erp_files
    WHERE category = $1
    ORDER BY uploaded_at DESC
  `, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []File
	for rows.Next() {
		var file File
		if err := rows.Scan(&file.ID, &file.Name, &file.Category, &file.UploadedAt, &file.InvoiceNumber); err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, rows.Err()
}

func (s *Store) InsertFile(ctx context.Context, file File) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO erp_files (id, name, category, uploaded_at, invoice_number)
    VALUES ($1,$2,$3,$4,$5)
  `, file.ID, file.Name, file.Category, file.UploadedAt, nullIfEmpty(file.InvoiceNumber))
	return err
}

func (s *Store) DeleteFile(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM erp_files WHERE id = $1", id)
	return err
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
