// Package storage defines persistence contracts for design history state.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested design record is missing.
var ErrNotFound = errors.New("record not found")

// DesignRecord stores one generated design specification.
type DesignRecord struct {
	ID            int64
	Prompt        string
	CharacterName string
	Archetype     string
	DesignSeed    int
	Specification string
	CreatedAt     time.Time
}

// DesignRecordStore persists generated design records.
type DesignRecordStore interface {
	CreateDesignRecord(ctx context.Context, record DesignRecord) (int64, error)
	GetDesignRecord(ctx context.Context, id int64) (DesignRecord, error)
	ListRecentDesignRecords(ctx context.Context, limit int) ([]DesignRecord, error)
}
