package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/domain"
)

// pgxExecutor is the part of *pgxpool.Pool the store needs.
type pgxExecutor interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

const publishedSlot = "cv"

// PostgresStore keeps the published CV in the single-row published_cv table.
type PostgresStore struct {
	db pgxExecutor
}

func NewPostgresStore(db pgxExecutor) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Publish(ctx context.Context, pdf []byte) (domain.PublishAck, error) {
	if err := checkPDF(pdf); err != nil {
		return domain.PublishAck{}, err
	}
	now := time.Now().UTC()
	_, err := s.db.Exec(ctx, `INSERT INTO published_cv (slot, file_name, content, size, published_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (slot) DO UPDATE SET file_name = EXCLUDED.file_name, content = EXCLUDED.content, size = EXCLUDED.size, published_at = EXCLUDED.published_at`,
		publishedSlot, common.PublishedFileName, pdf, len(pdf), now)
	if err != nil {
		if ctx.Err() != nil {
			return domain.PublishAck{}, ctx.Err()
		}
		return domain.PublishAck{}, publishFailure(err)
	}
	return domain.PublishAck{Key: "published_cv/" + publishedSlot, Size: len(pdf), PublishedAt: now}, nil
}

func (s *PostgresStore) Retrieve(ctx context.Context) ([]byte, error) {
	var content []byte
	err := s.db.QueryRow(ctx, `SELECT content FROM published_cv WHERE slot = $1`, publishedSlot).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotPublished
	}
	if err != nil {
		return nil, err
	}
	return content, nil
}
