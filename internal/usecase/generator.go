package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/document"
	"github.com/iggarsaudev/career-hub/internal/domain"
	"github.com/iggarsaudev/career-hub/internal/locale"
	"github.com/iggarsaudev/career-hub/internal/logging"
)

type GeneratorOptions struct {
	// RenderAttempts bounds retries of a failing render. Zero means one try.
	RenderAttempts int
	// RenderBackoff is the first retry delay; it doubles per attempt.
	RenderBackoff time.Duration
	// AvatarFallback re-renders without the avatar when rendering fails.
	AvatarFallback bool
}

// Generator runs the CV pipeline: fetch, QR, assemble, render and publish.
type Generator struct {
	source   ContentSource
	qr       QRCoder
	renderer Renderer
	store    Store
	log      logging.Logger
	opts     GeneratorOptions
}

func NewGenerator(src ContentSource, qr QRCoder, r Renderer, s Store, log logging.Logger, opts GeneratorOptions) *Generator {
	if opts.RenderAttempts <= 0 {
		opts.RenderAttempts = 1
	}
	return &Generator{source: src, qr: qr, renderer: r, store: s, log: log, opts: opts}
}

// Rendered is a generated CV ready to be served.
type Rendered struct {
	Data     []byte
	FileName string
}

// Snapshot reads every collection in one consistent pass.
func (g *Generator) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	return FetchSnapshot(ctx, g.source)
}

// Build fetches content and assembles the document for lang.
func (g *Generator) Build(ctx context.Context, lang locale.Lang) (*document.Document, error) {
	snap, err := g.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snap.Profile == nil {
		return nil, common.ErrMissingProfile
	}
	qr, err := g.qr.Encode(ctx, snap.Profile.PortfolioURL)
	if err != nil {
		return nil, fmt.Errorf("%w: qr: %v", common.ErrRenderFailure, err)
	}
	return document.Assemble(document.Input{
		Profile:    snap.Profile,
		Experience: snap.Experience,
		Education:  snap.Education,
		Skills:     snap.Skills,
		Languages:  snap.Languages,
		QR:         qr,
		Lang:       lang,
	})
}

// Generate builds and renders the CV without storing it.
func (g *Generator) Generate(ctx context.Context, lang locale.Lang) (Rendered, error) {
	doc, err := g.Build(ctx, lang)
	if err != nil {
		return Rendered{}, err
	}
	pdf, err := g.render(ctx, doc)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{Data: pdf, FileName: doc.Meta.FileName}, nil
}

// Preview streams the rendered CV to w. Nothing is stored.
func (g *Generator) Preview(ctx context.Context, lang locale.Lang, w io.Writer) (string, error) {
	doc, err := g.Build(ctx, lang)
	if err != nil {
		return "", err
	}
	if err := g.renderer.RenderStream(ctx, doc, w); err != nil {
		return "", err
	}
	return doc.Meta.FileName, nil
}

// Publish stores pdf as the published CV, replacing any previous one.
func (g *Generator) Publish(ctx context.Context, pdf []byte) (domain.PublishAck, error) {
	if !domain.IsPDF(pdf) {
		return domain.PublishAck{}, common.ErrInvalidDocument
	}
	ack, err := g.store.Publish(ctx, pdf)
	if err != nil {
		return domain.PublishAck{}, err
	}
	g.log.Info(ctx, "cv published", "key", ack.Key, "size", ack.Size)
	return ack, nil
}

// GenerateAndPublish renders the CV server-side and publishes it. A render
// failure leaves the published copy untouched.
func (g *Generator) GenerateAndPublish(ctx context.Context, lang locale.Lang) (domain.PublishAck, error) {
	r, err := g.Generate(ctx, lang)
	if err != nil {
		return domain.PublishAck{}, err
	}
	return g.Publish(ctx, r.Data)
}

// Published is the stored CV as served to visitors.
type Published struct {
	Data     []byte
	FileName string
}

// Retrieve returns the published CV and its suggested download name.
func (g *Generator) Retrieve(ctx context.Context) (Published, error) {
	pdf, err := g.store.Retrieve(ctx)
	if err != nil {
		return Published{}, err
	}
	return Published{Data: pdf, FileName: g.downloadName(ctx)}, nil
}

// downloadName derives the file name from the current profile. A failed
// lookup is not worth failing the download for.
func (g *Generator) downloadName(ctx context.Context) string {
	p, err := g.source.Profile(ctx)
	if err != nil {
		g.log.Warn(ctx, "profile lookup for download name failed", "error", err)
		return common.DefaultDownloadName
	}
	if p == nil {
		return common.DefaultDownloadName
	}
	return document.FileName(p.Name)
}

func (g *Generator) render(ctx context.Context, doc *document.Document) ([]byte, error) {
	pdf, err := g.renderWithRetry(ctx, doc)
	if err == nil {
		return pdf, nil
	}
	if !g.opts.AvatarFallback || !errors.Is(err, common.ErrRenderFailure) {
		return nil, err
	}
	if _, hasAvatar := doc.Block(document.BlockAvatar); !hasAvatar {
		return nil, err
	}
	g.log.Warn(ctx, "render failed, retrying without avatar", "error", err)
	return g.renderWithRetry(ctx, doc.WithoutAvatar())
}

// renderWithRetry retries with exponential backoff and checks the PDF
// signature of the result.
func (g *Generator) renderWithRetry(ctx context.Context, doc *document.Document) ([]byte, error) {
	var pdf []byte
	var renderErr error
	for i := 0; i < g.opts.RenderAttempts; i++ {
		pdf, renderErr = g.renderer.Render(ctx, doc)
		if renderErr == nil {
			if domain.IsPDF(pdf) {
				return pdf, nil
			}
			renderErr = fmt.Errorf("%w: invalid PDF output (len=%d)", common.ErrRenderFailure, len(pdf))
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		g.log.Warn(ctx, "render attempt failed", "attempt", i+1, "error", renderErr)
		if i < g.opts.RenderAttempts-1 {
			backoff := g.opts.RenderBackoff * time.Duration(1<<i)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, renderErr
}
