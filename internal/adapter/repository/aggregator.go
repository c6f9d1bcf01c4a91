package repository

import (
	"context"

	"github.com/jackc/pgx/v4"
)

// rowQuerier is the part of *pgxpool.Pool the repository needs.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// queryJSON runs a SQL that returns a single json value and hands back its
// raw bytes.
func queryJSON(ctx context.Context, db rowQuerier, sql string, args ...interface{}) ([]byte, error) {
	var raw []byte
	if err := db.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
