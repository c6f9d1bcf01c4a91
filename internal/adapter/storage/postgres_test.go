package storage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iggarsaudev/career-hub/internal/common"
)

// fakeSlotDB emulates the published_cv upsert on a single row.
type fakeSlotDB struct {
	mu      sync.Mutex
	content []byte
	execErr error
}

type fakeRow struct {
	content []byte
	err     error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.content
	return nil
}

func (f *fakeSlotDB) Exec(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.execErr != nil {
		return nil, f.execErr
	}
	f.content = append([]byte(nil), args[2].([]byte)...)
	return pgconn.CommandTag("INSERT 0 1"), nil
}

func (f *fakeSlotDB) QueryRow(_ context.Context, _ string, _ ...interface{}) pgx.Row {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.content == nil {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{content: f.content}
}

func TestPostgresStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) store { return NewPostgresStore(&fakeSlotDB{}) })
}

func TestPostgresStore_ExecErrorIsPublishFailure(t *testing.T) {
	_, err := NewPostgresStore(&fakeSlotDB{execErr: errors.New("db down")}).Publish(context.Background(), []byte("%PDF-1"))
	assert.ErrorIs(t, err, common.ErrPublishFailure)
}
