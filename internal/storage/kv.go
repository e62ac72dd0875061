package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

var ErrNotFound = errors.New("storage: not found")

// KV is the persistent key/value layer: one JSON document per key.
type KV struct {
	db *sql.DB
}

func NewKV(db *sql.DB) (*KV, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &KV{db: db}, nil
}

func OpenKV(path string) (*KV, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	kv, err := NewKV(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return kv, nil
}

func (kv *KV) Close() error {
	return kv.db.Close()
}

// Get decodes the document stored under key into out. A missing row or a
// document that fails to parse returns ErrNotFound and leaves out untouched;
// defaults are never written back.
func (kv *KV) Get(ctx context.Context, key string, out any) error {
	row := kv.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, key)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("read snapshot %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return ErrNotFound
	}
	return nil
}

// Set serializes v and overwrites any prior document under key.
func (kv *KV) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", key, err)
	}
	_, err = kv.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("write snapshot %q: %w", key, err)
	}
	return nil
}

// Reset removes every stored snapshot.
func (kv *KV) Reset(ctx context.Context) error {
	if _, err := kv.db.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("reset snapshots: %w", err)
	}
	return nil
}
