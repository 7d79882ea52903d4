// Package sqlite implements the driven store ports over a SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB holds split read and write connection pools for one database file.
// SQLite allows a single writer at a time, so the write pool is capped at one
// connection; reads go through a small pool of their own.
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
	path   string
}

// NewDB opens the database at dbPath with WAL journaling, a 5s busy timeout,
// synchronous NORMAL, foreign keys on, and a 64MB page cache.
func NewDB(dbPath string) (*DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=cache_size(-64000)",
		dbPath,
	)

	writer, err := openPool(dsn, 1)
	if err != nil {
		return nil, fmt.Errorf("open writer pool: %w", err)
	}

	reader, err := openPool(dsn, 4)
	if err != nil {
		writer.Close()
		return nil, fmt.Errorf("open reader pool: %w", err)
	}

	return &DB{
		Writer: writer,
		Reader: reader,
		path:   dbPath,
	}, nil
}

func openPool(dsn string, maxConns int) (*sql.DB, error) {
	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(maxConns)

	if err := pool.Ping(); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// Close closes both pools and returns the first error encountered.
func (db *DB) Close() error {
	var firstErr error

	if err := db.Reader.Close(); err != nil {
		firstErr = fmt.Errorf("close reader: %w", err)
	}

	if err := db.Writer.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close writer: %w", err)
	}

	return firstErr
}
