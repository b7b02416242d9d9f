package db

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/coursesearch/internal/config"
)

// Rows is a forward-only result set. pgx.Rows satisfies it directly.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Conn is a single, unpooled connection to the course store
type Conn interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close(ctx context.Context) error
}

// Connector opens a new Conn on every call. Callers own the returned
// connection and must Close it.
type Connector interface {
	Connect(ctx context.Context) (Conn, error)
	// Placeholder is the bind-parameter style the driver expects
	Placeholder() squirrel.PlaceholderFormat
}

// NewConnector returns the Connector for the configured driver
func NewConnector(cfg *config.Config) (Connector, error) {
	switch cfg.DatabaseDriver() {
	case config.DriverPostgres:
		return NewPostgresConnector(cfg.GetPostgresConnectionString())
	case config.DriverSQLite:
		return NewSQLiteConnector(cfg.Database.Path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
