package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite"
)

// Connection pool limits. SQLite serializes writes, so a single writer avoids
// "database is locked" errors while readers run concurrently under WAL.
const (
	maxWriterConns = 1
	maxReaderConns = 4
)

const commonPragmas = "_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=cache_size(-64000)"

// DB provides dual reader/writer connections to one SQLite database.
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
	dsn    string
}

// NewDB opens the database file at dbPath in WAL mode.
func NewDB(ctx context.Context, dbPath string) (*DB, error) {
	return open(ctx, fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&%s", dbPath, commonPragmas))
}

// NewMemoryDB opens a named, shared-cache in-memory database. Connections
// opened with the same name see the same data until the last one closes.
func NewMemoryDB(ctx context.Context, name string) (*DB, error) {
	return open(ctx, fmt.Sprintf("file:%s?mode=memory&cache=shared&%s", url.PathEscape(name), commonPragmas))
}

func open(ctx context.Context, dsn string) (*DB, error) {
	writer, err := openPool(ctx, dsn, maxWriterConns)
	if err != nil {
		return nil, fmt.Errorf("writer: %w", err)
	}

	reader, err := openPool(ctx, dsn, maxReaderConns)
	if err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("reader: %w", err)
	}

	return &DB{Writer: writer, Reader: reader, dsn: dsn}, nil
}

func openPool(ctx context.Context, dsn string, maxConns int) (*sql.DB, error) {
	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	pool.SetMaxOpenConns(maxConns)

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

// Close closes both reader and writer connections. Returns the first error encountered.
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
