package usecase

import (
	"context"
	"io"

	"github.com/iggarsaudev/career-hub/internal/document"
	"github.com/iggarsaudev/career-hub/internal/domain"
)

// ContentSource reads the content collections owned by the CRUD service.
// Profile returns nil without error when no profile exists.
type ContentSource interface {
	Profile(ctx context.Context) (*domain.Profile, error)
	Projects(ctx context.Context) ([]domain.Project, error)
	Experience(ctx context.Context) ([]domain.Experience, error)
	Education(ctx context.Context) ([]domain.Education, error)
	Skills(ctx context.Context) ([]domain.Skill, error)
	Languages(ctx context.Context) ([]domain.Language, error)
}

type Renderer interface {
	Render(ctx context.Context, doc *document.Document) ([]byte, error)
	RenderStream(ctx context.Context, doc *document.Document, w io.Writer) error
}

// Store is the single published CV slot.
type Store interface {
	Publish(ctx context.Context, pdf []byte) (domain.PublishAck, error)
	Retrieve(ctx context.Context) ([]byte, error)
}

type QRCoder interface {
	Encode(ctx context.Context, portfolioURL string) (*document.Image, error)
}
