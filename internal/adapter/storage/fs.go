package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/domain"
)

// FSStore keeps the published CV as <dir>/cv_publico.pdf. Writes go to a
// temp file in the same directory and are renamed into place.
type FSStore struct {
	dir string
}

func NewFSStore(dir string) *FSStore {
	return &FSStore{dir: dir}
}

func (s *FSStore) Path() string {
	return filepath.Join(s.dir, common.PublishedFileName)
}

func (s *FSStore) Publish(ctx context.Context, pdf []byte) (domain.PublishAck, error) {
	if err := checkPDF(pdf); err != nil {
		return domain.PublishAck{}, err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return domain.PublishAck{}, publishFailure(err)
	}

	tmp, err := os.CreateTemp(s.dir, ".cv-*.tmp")
	if err != nil {
		return domain.PublishAck{}, publishFailure(err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(pdf); err != nil {
		_ = tmp.Close()
		return domain.PublishAck{}, publishFailure(err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return domain.PublishAck{}, publishFailure(err)
	}
	if err := tmp.Close(); err != nil {
		return domain.PublishAck{}, publishFailure(err)
	}
	// Abandoned publishes leave the previous copy in place.
	if err := ctx.Err(); err != nil {
		return domain.PublishAck{}, err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return domain.PublishAck{}, publishFailure(err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		return domain.PublishAck{}, publishFailure(err)
	}
	committed = true

	return domain.PublishAck{Key: s.Path(), Size: len(pdf), PublishedAt: time.Now()}, nil
}

func (s *FSStore) Retrieve(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, common.ErrNotPublished
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
