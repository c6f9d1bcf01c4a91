package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/domain"
)

type store interface {
	Publish(ctx context.Context, pdf []byte) (domain.PublishAck, error)
	Retrieve(ctx context.Context) ([]byte, error)
}

// runStoreContract checks the behaviour every backend shares.
func runStoreContract(t *testing.T, newStore func(t *testing.T) store) {
	ctx := context.Background()

	t.Run("not published", func(t *testing.T) {
		s := newStore(t)
		b, err := s.Retrieve(ctx)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, common.ErrNotPublished)
	})

	t.Run("round trip and overwrite", func(t *testing.T) {
		s := newStore(t)
		first := []byte("%PDF-1.7 first")
		second := []byte("%PDF-1.7 second, longer")

		ack, err := s.Publish(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, len(first), ack.Size)
		assert.NotEmpty(t, ack.Key)

		got, err := s.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, got)

		_, err = s.Publish(ctx, second)
		require.NoError(t, err)
		got, err = s.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, second, got)
	})

	t.Run("rejects non pdf and keeps previous copy", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Publish(ctx, []byte("%PDF-good"))
		require.NoError(t, err)

		_, err = s.Publish(ctx, []byte("<html>nope"))
		assert.ErrorIs(t, err, common.ErrInvalidDocument)

		got, err := s.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-good"), got)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) store { return NewMemoryStore() })
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	in := []byte("%PDF-1.4 abc")
	_, err := s.Publish(context.Background(), in)
	require.NoError(t, err)
	in[5] = 'X'

	out, err := s.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 abc", string(out))
	out[0] = 'Z'

	again, _ := s.Retrieve(context.Background())
	assert.Equal(t, "%PDF-1.4 abc", string(again))
}

func TestMemoryStore_ConcurrentPublishLastWriteWins(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Publish(context.Background(), []byte("%PDF-"+string(rune('a'+i))))
		}(i)
	}
	wg.Wait()

	got, err := s.Retrieve(context.Background())
	require.NoError(t, err)
	assert.True(t, domain.IsPDF(got))
	assert.Len(t, got, 6)
}
