package resolver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lingofeed/lingofeed/internal/feed"
)

//go:generate mockgen -source=cache.go -destination=../mocks/resolver/mock_cache.go -package=mock_resolver

// CacheEntry is a persisted resolution result. Entries are created on first
// successful resolution and never updated in place.
type CacheEntry struct {
	Key       ContentKey
	Payload   json.RawMessage
	CreatedAt time.Time
}

// CacheStore is the durable key-value store for resolved payloads.
// Get returns (nil, nil) when the key is absent; that is the expected
// first-request path, not a failure. Put is insert-only.
type CacheStore interface {
	Get(ctx context.Context, key ContentKey) (*CacheEntry, error)
	Put(ctx context.Context, key ContentKey, payload json.RawMessage) error
}

type cacheRow struct {
	ID             int64     `db:"id"`
	Kind           string    `db:"kind"`
	SubjectID      string    `db:"subject_id"`
	Word           string    `db:"word"`
	SourceLanguage string    `db:"source_language"`
	TargetLanguage string    `db:"target_language"`
	Level          string    `db:"level"`
	Payload        []byte    `db:"payload"`
	CreatedAt      time.Time `db:"created_at"`
}

// DBCacheStore implements CacheStore using MySQL.
type DBCacheStore struct {
	db *sqlx.DB
}

// NewDBCacheStore creates a new DBCacheStore.
func NewDBCacheStore(db *sqlx.DB) *DBCacheStore {
	return &DBCacheStore{db: db}
}

// Get looks up a cache entry by exact match on every key field.
func (s *DBCacheStore) Get(ctx context.Context, key ContentKey) (*CacheEntry, error) {
	var row cacheRow
	err := s.db.GetContext(ctx, &row,
		`SELECT * FROM content_cache
		WHERE kind = ? AND subject_id = ? AND word = ? AND source_language = ? AND target_language = ? AND level = ?`,
		string(key.Kind), key.SubjectID, key.Word, key.SourceLanguage, key.TargetLanguage, string(key.Level))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(content_cache) > %w", err)
	}

	return &CacheEntry{
		Key: ContentKey{
			Kind:           Kind(row.Kind),
			SubjectID:      row.SubjectID,
			Word:           row.Word,
			SourceLanguage: row.SourceLanguage,
			TargetLanguage: row.TargetLanguage,
			Level:          feed.Level(row.Level),
		},
		Payload:   row.Payload,
		CreatedAt: row.CreatedAt,
	}, nil
}

// Put inserts a cache entry. An entry that already exists is kept unchanged
// (first write wins); concurrent resolutions of the same key may both reach
// this insert.
func (s *DBCacheStore) Put(ctx context.Context, key ContentKey, payload json.RawMessage) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT IGNORE INTO content_cache (kind, subject_id, word, source_language, target_language, level, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(key.Kind), key.SubjectID, key.Word, key.SourceLanguage, key.TargetLanguage, string(key.Level),
		[]byte(payload)); err != nil {
		return fmt.Errorf("db.ExecContext(insert content_cache) > %w", err)
	}
	return nil
}
