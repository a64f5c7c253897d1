// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

const (
	blobTable = "vault_blob"
	blobRowID = 1
)

// SQLiteBlobStore keeps the vault blob in a single-row SQLite table. The
// blob bytes are identical to what [FileBlobStore] would write; SQLite only
// contributes transactional replacement.
type SQLiteBlobStore struct {
	db     *sql.DB
	dsn    string
	logger *logger.Logger
}

// NewSQLiteBlobStore opens (creating if needed) the SQLite database at dsn,
// applies pending migrations, and returns a ready [SQLiteBlobStore].
func NewSQLiteBlobStore(ctx context.Context, dsn string, log *logger.Logger) (*SQLiteBlobStore, error) {
	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteBlobStore").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteBlobStore").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting to DB: %w", err)
	}

	if err = migrations.Migrate(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewSQLiteBlobStore").Msg("connected to database successfully")

	return newSQLiteBlobStore(conn, dsn, log), nil
}

func newSQLiteBlobStore(db *sql.DB, dsn string, log *logger.Logger) *SQLiteBlobStore {
	return &SQLiteBlobStore{db: db, dsn: dsn, logger: log}
}

// Read implements [BlobStore].
func (s *SQLiteBlobStore) Read(ctx context.Context) ([]byte, error) {
	query, args, err := sq.Select("blob").
		From(blobTable).
		Where(sq.Eq{"id": blobRowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var blob []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, s.dsn)
		}
		s.logger.Err(err).Str("func", "SQLiteBlobStore.Read").Msg("error reading vault blob")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return blob, nil
}

// Write implements [BlobStore].
func (s *SQLiteBlobStore) Write(ctx context.Context, blob []byte) error {
	query, args, err := sq.Insert(blobTable).
		Columns("id", "blob", "updated_at").
		Values(blobRowID, blob, time.Now().UTC()).
		Suffix("ON CONFLICT(id) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "SQLiteBlobStore.Write").Msg("error writing vault blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Location implements [BlobStore].
func (s *SQLiteBlobStore) Location() string {
	return s.dsn
}

// Close releases the database connection.
func (s *SQLiteBlobStore) Close() error {
	return s.db.Close()
}
