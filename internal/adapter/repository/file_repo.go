package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/iggarsaudev/career-hub/internal/domain"
	"github.com/iggarsaudev/career-hub/internal/model"
)

// FileRepo reads every collection from a JSON snapshot file. The file is
// re-read on each call so edits show up without a restart.
type FileRepo struct {
	path string
}

func NewFileRepo(path string) *FileRepo {
	return &FileRepo{path: path}
}

func (r *FileRepo) load(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	return model.DecodeSnapshot(raw)
}

func (r *FileRepo) Profile(ctx context.Context) (*domain.Profile, error) {
	s, err := r.load(ctx)
	return s.Profile, err
}

func (r *FileRepo) Projects(ctx context.Context) ([]domain.Project, error) {
	s, err := r.load(ctx)
	return s.Projects, err
}

func (r *FileRepo) Experience(ctx context.Context) ([]domain.Experience, error) {
	s, err := r.load(ctx)
	return s.Experience, err
}

func (r *FileRepo) Education(ctx context.Context) ([]domain.Education, error) {
	s, err := r.load(ctx)
	return s.Education, err
}

func (r *FileRepo) Skills(ctx context.Context) ([]domain.Skill, error) {
	s, err := r.load(ctx)
	return s.Skills, err
}

func (r *FileRepo) Languages(ctx context.Context) ([]domain.Language, error) {
	s, err := r.load(ctx)
	return s.Languages, err
}
