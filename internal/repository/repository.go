// Package repository implements the catalog store on top of Postgres.
// It is selected when a database DSN is configured and satisfies the
// same contract as the file-backed store, including the lazy creation
// of user entries on read.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/chlee-dev/gif-catalog/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrConflict is returned when a record with the same id already
// exists in the user's collection.
var ErrConflict = errors.New("data conflict")

func InitDB(ps string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", ps)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	createTables := `
		CREATE TABLE IF NOT EXISTS catalog_users (
			user_id TEXT PRIMARY KEY
		);
		CREATE TABLE IF NOT EXISTS gif_records (
			user_id       TEXT NOT NULL REFERENCES catalog_users(user_id),
			id            TEXT NOT NULL,
			title         TEXT NOT NULL,
			url           TEXT NOT NULL DEFAULT '',
			thumbnail_url TEXT NOT NULL DEFAULT '',
			tags          JSONB NOT NULL DEFAULT '[]',
			position      BIGSERIAL,
			PRIMARY KEY (user_id, id)
	);`

	if _, err = db.Exec(createTables); err != nil {
		logger.Fatal("cannot create catalog tables", zap.Error(err))
	}

	return db
}

type GifRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateGifRepository(db *sql.DB, logger *zap.Logger) *GifRepository {
	return &GifRepository{
		db:     db,
		logger: logger,
	}
}

type execer interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}

func (r *GifRepository) ensureUser(ctx context.Context, q execer, userID string) error {
	_, err := q.ExecContext(ctx,
		"INSERT INTO catalog_users(user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;", userID)
	return err
}

// Load returns the full mapping, users without records included.
func (r *GifRepository) Load(ctx context.Context) (storage.Catalog, error) {
	catalog := storage.Catalog{}

	userRows, err := r.db.QueryContext(ctx, "SELECT user_id FROM catalog_users;")
	if err != nil {
		return nil, err
	}
	defer userRows.Close()

	for userRows.Next() {
		var userID string
		if err := userRows.Scan(&userID); err != nil {
			return nil, err
		}
		catalog[userID] = []storage.GifRecord{}
	}
	if err := userRows.Err(); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT user_id, id, title, url, thumbnail_url, tags FROM gif_records ORDER BY position;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		catalog[record.UserID] = append(catalog[record.UserID], *record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return catalog, nil
}

func (r *GifRepository) GetUserGifs(ctx context.Context, userID string) ([]storage.GifRecord, error) {
	if err := r.ensureUser(ctx, r.db, userID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT user_id, id, title, url, thumbnail_url, tags FROM gif_records WHERE user_id = $1 ORDER BY position;", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]storage.GifRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *GifRepository) Append(ctx context.Context, userID string, record storage.GifRecord) (*storage.GifRecord, error) {
	record.UserID = userID

	tags, err := json.Marshal(record.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := r.ensureUser(ctx, tx, userID); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO gif_records(user_id, id, title, url, thumbnail_url, tags) VALUES ($1, $2, $3, $4, $5, $6);",
		record.UserID, record.ID, record.Title, record.URL, record.ThumbnailURL, tags)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrConflict
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *GifRepository) Delete(ctx context.Context, userID string, gifID string) (*storage.GifRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"DELETE FROM gif_records WHERE user_id = $1 AND id = $2 RETURNING user_id, id, title, url, thumbnail_url, tags;",
		userID, gifID)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *GifRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*storage.GifRecord, error) {
	var record storage.GifRecord
	var tags []byte

	if err := s.Scan(&record.UserID, &record.ID, &record.Title, &record.URL, &record.ThumbnailURL, &tags); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(tags, &record.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}

	return &record, nil
}
