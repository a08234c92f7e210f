// Package certstore persists data plane certificates and their metadata in
// Postgres.
package certstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Think-iT-Labs/jad/internal/model"
)

// ErrNotFound is returned when no certificate exists under the id.
var ErrNotFound = errors.New("certificate not found")

// DB is the subset of pgxpool.Pool the store uses.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store reads and writes certificate blobs keyed by id. Metadata is kept as
// a jsonb column next to the raw bytes.
type Store struct {
	db DB
}

func NewStore(db DB) *Store {
	return &Store{db: db}
}

func (s *Store) Store(ctx context.Context, metadata model.CertMetadata, content []byte) error {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("marshal cert metadata: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO certs (id, metadata, data) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET metadata = EXCLUDED.metadata, data = EXCLUDED.data`,
		metadata.ID, metadataJSON, content,
	)
	if err != nil {
		return fmt.Errorf("insert cert %s: %w", metadata.ID, err)
	}
	return nil
}

func (s *Store) GetMetadata(ctx context.Context, id string) (*model.CertMetadata, error) {
	var metadataJSON []byte
	err := s.db.QueryRow(ctx, `SELECT metadata FROM certs WHERE id = $1`, id).Scan(&metadataJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("cert %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get cert metadata %s: %w", id, err)
	}

	var metadata model.CertMetadata
	if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
		return nil, fmt.Errorf("unmarshal cert metadata %s: %w", id, err)
	}
	return &metadata, nil
}

func (s *Store) Retrieve(ctx context.Context, id string) ([]byte, error) {
	var content []byte
	err := s.db.QueryRow(ctx, `SELECT data FROM certs WHERE id = $1`, id).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("cert %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("retrieve cert %s: %w", id, err)
	}
	return content, nil
}

// QueryMetadata lists certificate metadata ordered by id with limit/offset
// paging.
func (s *Store) QueryMetadata(ctx context.Context, limit, offset int) ([]model.CertMetadata, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(ctx, `SELECT metadata FROM certs ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query cert metadata: %w", err)
	}
	defer rows.Close()

	var result []model.CertMetadata
	for rows.Next() {
		var metadataJSON []byte
		if err := rows.Scan(&metadataJSON); err != nil {
			return nil, fmt.Errorf("scan cert metadata: %w", err)
		}
		var metadata model.CertMetadata
		if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
			return nil, fmt.Errorf("unmarshal cert metadata: %w", err)
		}
		result = append(result, metadata)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cert metadata: %w", err)
	}
	return result, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM certs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cert %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cert %s: %w", id, ErrNotFound)
	}
	return nil
}
