package signatures

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("signature document not found")

const documentColumns = "id, title, signer_name, signer_email, COALESCE(created_by::text, ''), status, COALESCE(provider_ref, ''), created_at, sent_at, completed_at"

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func scanDocument(row pgx.Row) (Document, error) {
	var doc Document
	err := row.Scan(&doc.ID, &doc.Title, &doc.SignerName, &doc.SignerEmail, &doc.CreatedBy, &doc.Status,
		&doc.ProviderRef, &doc.CreatedAt, &doc.SentAt, &doc.CompletedAt)
	return doc, err
}

func (s *Store) List(ctx context.Context) ([]Document, error) {
	rows, err := s.DB.Query(ctx, "SELECT "+documentColumns+" FROM signature_documents ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Document, error) {
	doc, err := scanDocument(s.DB.QueryRow(ctx, "SELECT "+documentColumns+" FROM signature_documents WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	return doc, err
}

func (s *Store) Insert(ctx context.Context, doc Document) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO signature_documents (id, title, signer_name, signer_email, created_by, status, provider_ref, created_at, sent_at, completed_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
  `, doc.ID, doc.Title, doc.SignerName, doc.SignerEmail, nullIfEmpty(doc.CreatedBy), doc.Status,
		nullIfEmpty(doc.ProviderRef), doc.CreatedAt, doc.SentAt, doc.CompletedAt)
	return err
}

func (s *Store) Update(ctx context.Context, doc Document) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE signature_documents
    SET title = $2, signer_name = $3, signer_email = $4, status = $5,
        provider_ref = $6, sent_at = $7, completed_at = $8
    WHERE id = $1
  `, doc.ID, doc.Title, doc.SignerName, doc.SignerEmail, doc.Status,
		nullIfEmpty(doc.ProviderRef), doc.SentAt, doc.CompletedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
