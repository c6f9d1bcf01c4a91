package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/domain"
)

// FetchSnapshot reads all six collections concurrently. The first failure
// cancels the remaining reads and nothing partial is returned.
func FetchSnapshot(ctx context.Context, src ContentSource) (domain.Snapshot, error) {
	var s domain.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		s.Profile, err = src.Profile(gctx)
		return wrapFetch("profile", err)
	})
	g.Go(func() (err error) {
		s.Projects, err = src.Projects(gctx)
		return wrapFetch("projects", err)
	})
	g.Go(func() (err error) {
		s.Experience, err = src.Experience(gctx)
		return wrapFetch("experience", err)
	})
	g.Go(func() (err error) {
		s.Education, err = src.Education(gctx)
		return wrapFetch("education", err)
	})
	g.Go(func() (err error) {
		s.Skills, err = src.Skills(gctx)
		return wrapFetch("skills", err)
	})
	g.Go(func() (err error) {
		s.Languages, err = src.Languages(gctx)
		return wrapFetch("languages", err)
	})

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return domain.Snapshot{}, ctx.Err()
		}
		return domain.Snapshot{}, err
	}
	return s, nil
}

func wrapFetch(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: fetch %s: %w", common.ErrDataUnavailable, name, err)
}
