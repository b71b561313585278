// Package blobcache provides the default persistent gumble.BlobCache
// backend: an embedded SQLite database keyed by (entity kind, entity id,
// hash). It satisfies gumble.BlobCache by method signature alone, so the
// gumble package never imports it.
package blobcache

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/mumbleclient/gumble/gumble"
	_ "modernc.org/sqlite"
)

// migrations holds the ordered schema statements applied on Open.
// Append, never edit or reorder.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS blobs (
		kind    INTEGER NOT NULL,
		id      INTEGER NOT NULL,
		hash    TEXT NOT NULL,
		payload BLOB NOT NULL,
		PRIMARY KEY (kind, id, hash)
	)`,
	`PRAGMA journal_mode=WAL`,
}

// Cache is a SQLite-backed gumble.BlobCache. The zero value is not usable;
// construct with Open.
type Cache struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and applies any
// pending migrations. Use ":memory:" for an ephemeral in-process cache.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("gumble/blobcache: open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		log.Printf("[blobcache] busy_timeout: %v (non-fatal)", err)
	}

	c := &Cache{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("gumble/blobcache: migrate: %w", err)
	}
	return c, nil
}

// Close releases the underlying database connection.
func (c *Cache) Close() error { return c.db.Close() }

func (c *Cache) migrate() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var current int
	if err := c.db.QueryRow(
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`,
	).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for i, stmt := range migrations {
		v := i + 1
		if v <= current {
			continue
		}
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", v, err)
		}
		if _, err := c.db.Exec(
			`INSERT INTO schema_migrations(version) VALUES(?)`, v,
		); err != nil {
			return fmt.Errorf("record migration %d: %w", v, err)
		}
	}
	return nil
}

// Get implements gumble.BlobCache: it reports whether payload for
// (kind, id, hash) is cached.
func (c *Cache) Get(kind gumble.BlobKind, id uint32, hash []byte) ([]byte, bool) {
	var payload []byte
	err := c.db.QueryRow(
		`SELECT payload FROM blobs WHERE kind = ? AND id = ? AND hash = ?`,
		kind, id, string(hash),
	).Scan(&payload)
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Put implements gumble.BlobCache: it stores payload under (kind, id, hash),
// replacing any existing entry for that key.
func (c *Cache) Put(kind gumble.BlobKind, id uint32, hash []byte, payload []byte) error {
	_, err := c.db.Exec(
		`INSERT INTO blobs(kind, id, hash, payload) VALUES(?, ?, ?, ?)
		 ON CONFLICT(kind, id, hash) DO UPDATE SET payload = excluded.payload`,
		kind, id, string(hash), payload,
	)
	return err
}
