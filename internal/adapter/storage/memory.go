package storage

import (
	"context"
	"sync"
	"time"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/domain"
)

type MemoryStore struct {
	mu          sync.RWMutex
	data        []byte
	publishedAt time.Time
	now         func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Publish(ctx context.Context, pdf []byte) (domain.PublishAck, error) {
	if err := checkPDF(pdf); err != nil {
		return domain.PublishAck{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.PublishAck{}, err
	}
	cp := append([]byte(nil), pdf...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = cp
	s.publishedAt = s.now()
	return domain.PublishAck{Key: common.PublishedFileName, Size: len(cp), PublishedAt: s.publishedAt}, nil
}

func (s *MemoryStore) Retrieve(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, common.ErrNotPublished
	}
	return append([]byte(nil), s.data...), nil
}
