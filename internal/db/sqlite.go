package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

// SQLiteConnector opens a SQLite database file read-only.
// Each Connect gets its own *sql.DB capped at one connection, so closing
// it releases the file handle just like closing a pgx connection.
type SQLiteConnector struct {
	dsn string
}

// uriPathEscaper escapes the characters that end or alter the path part
// of a SQLite file: URI
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// NewSQLiteConnector returns a connector for the database file at path.
// The file must already exist.
func NewSQLiteConnector(path string) *SQLiteConnector {
	return &SQLiteConnector{dsn: "file:" + uriPathEscaper.Replace(path) + "?mode=ro"}
}

// Connect opens the database and verifies it is reachable
func (c *SQLiteConnector) Connect(ctx context.Context) (Conn, error) {
	handle, err := sql.Open("sqlite", c.dsn)
	if err != nil {
		return nil, err
	}
	handle.SetMaxOpenConns(1)

	if err := handle.PingContext(ctx); err != nil {
		_ = handle.Close()
		return nil, err
	}
	return &sqliteConn{db: handle}, nil
}

// Placeholder returns ?
func (c *SQLiteConnector) Placeholder() squirrel.PlaceholderFormat {
	return squirrel.Question
}

type sqliteConn struct {
	db *sql.DB
}

func (c *sqliteConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &sqliteRows{rows: rows}, nil
}

func (c *sqliteConn) Close(_ context.Context) error {
	return c.db.Close()
}

// sqliteRows adapts *sql.Rows, whose Close returns an error, to Rows
type sqliteRows struct {
	rows *sql.Rows
}

func (r *sqliteRows) Next() bool             { return r.rows.Next() }
func (r *sqliteRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r *sqliteRows) Err() error             { return r.rows.Err() }
func (r *sqliteRows) Close()                 { _ = r.rows.Close() }
