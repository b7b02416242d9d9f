package db

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// PostgresConnector dials PostgreSQL with pgx, one connection per call
type PostgresConnector struct {
	connConfig *pgx.ConnConfig
}

// NewPostgresConnector parses connString once so that a malformed
// descriptor fails at startup instead of on the first request
func NewPostgresConnector(connString string) (*PostgresConnector, error) {
	connConfig, err := pgx.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	return &PostgresConnector{connConfig: connConfig}, nil
}

// Connect opens a new PostgreSQL connection
func (c *PostgresConnector) Connect(ctx context.Context) (Conn, error) {
	conn, err := pgx.ConnectConfig(ctx, c.connConfig)
	if err != nil {
		return nil, err
	}
	return &postgresConn{conn: conn}, nil
}

// Placeholder returns $1, $2, ...
func (c *PostgresConnector) Placeholder() squirrel.PlaceholderFormat {
	return squirrel.Dollar
}

type postgresConn struct {
	conn *pgx.Conn
}

func (c *postgresConn) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rows, err := c.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *postgresConn) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}
