// Package sqlite provides a SQLite-backed design storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/plushfoundry/mascotforge/internal/platform/storage/sqlitemigrate"
	"github.com/plushfoundry/mascotforge/internal/services/design/storage"
	"github.com/plushfoundry/mascotforge/internal/services/design/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists design records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite design store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateDesignRecord inserts one design record and returns its ID.
func (s *Store) CreateDesignRecord(ctx context.Context, record storage.DesignRecord) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	characterName := strings.TrimSpace(record.CharacterName)
	archetype := strings.TrimSpace(record.Archetype)
	if characterName == "" {
		return 0, fmt.Errorf("character name is required")
	}
	if archetype == "" {
		return 0, fmt.Errorf("archetype is required")
	}
	if strings.TrimSpace(record.Specification) == "" {
		return 0, fmt.Errorf("specification is required")
	}
	createdAt := record.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO design_records (
		   prompt,
		   character_name,
		   archetype,
		   design_seed,
		   specification,
		   created_at
		 ) VALUES (?, ?, ?, ?, ?, ?)`,
		record.Prompt,
		characterName,
		archetype,
		record.DesignSeed,
		record.Specification,
		toMillis(createdAt),
	)
	if err != nil {
		return 0, fmt.Errorf("create design record: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// GetDesignRecord returns one design record by ID.
func (s *Store) GetDesignRecord(ctx context.Context, id int64) (storage.DesignRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.DesignRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.DesignRecord{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, prompt, character_name, archetype, design_seed, specification, created_at
		   FROM design_records
		  WHERE id = ?`,
		id,
	)

	var record storage.DesignRecord
	var createdAt int64
	err := row.Scan(
		&record.ID,
		&record.Prompt,
		&record.CharacterName,
		&record.Archetype,
		&record.DesignSeed,
		&record.Specification,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.DesignRecord{}, storage.ErrNotFound
		}
		return storage.DesignRecord{}, fmt.Errorf("get design record: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}

// ListRecentDesignRecords returns up to limit records, newest first.
func (s *Store) ListRecentDesignRecords(ctx context.Context, limit int) ([]storage.DesignRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, prompt, character_name, archetype, design_seed, specification, created_at
		   FROM design_records
		  ORDER BY created_at DESC, id DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list design records: %w", err)
	}
	defer rows.Close()

	records := make([]storage.DesignRecord, 0, limit)
	for rows.Next() {
		var record storage.DesignRecord
		var createdAt int64
		if err := rows.Scan(
			&record.ID,
			&record.Prompt,
			&record.CharacterName,
			&record.Archetype,
			&record.DesignSeed,
			&record.Specification,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan design record: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate design records: %w", err)
	}
	return records, nil
}
