package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/document"
	"github.com/iggarsaudev/career-hub/internal/domain"
	"github.com/iggarsaudev/career-hub/internal/locale"
)

type fakeSource struct {
	snap domain.Snapshot
	errs map[string]error
}

func (f *fakeSource) Profile(ctx context.Context) (*domain.Profile, error) {
	return f.snap.Profile, f.errs["profile"]
}

func (f *fakeSource) Projects(ctx context.Context) ([]domain.Project, error) {
	return f.snap.Projects, f.errs["projects"]
}

func (f *fakeSource) Experience(ctx context.Context) ([]domain.Experience, error) {
	return f.snap.Experience, f.errs["experience"]
}

func (f *fakeSource) Education(ctx context.Context) ([]domain.Education, error) {
	return f.snap.Education, f.errs["education"]
}

func (f *fakeSource) Skills(ctx context.Context) ([]domain.Skill, error) {
	return f.snap.Skills, f.errs["skills"]
}

func (f *fakeSource) Languages(ctx context.Context) ([]domain.Language, error) {
	return f.snap.Languages, f.errs["languages"]
}

type fakeQR struct {
	err  error
	urls []string
}

func (f *fakeQR) Encode(ctx context.Context, portfolioURL string) (*document.Image, error) {
	f.urls = append(f.urls, portfolioURL)
	if f.err != nil {
		return nil, f.err
	}
	return &document.Image{Data: []byte("png"), MIME: "image/png"}, nil
}

// fakeRenderer replays results in order; the last one repeats.
type fakeRenderer struct {
	results []renderResult
	docs    []*document.Document
}

type renderResult struct {
	pdf []byte
	err error
}

func (f *fakeRenderer) Render(ctx context.Context, doc *document.Document) ([]byte, error) {
	f.docs = append(f.docs, doc)
	i := len(f.docs) - 1
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	return f.results[i].pdf, f.results[i].err
}

func (f *fakeRenderer) RenderStream(ctx context.Context, doc *document.Document, w io.Writer) error {
	pdf, err := f.Render(ctx, doc)
	if err != nil {
		return err
	}
	_, err = w.Write(pdf)
	return err
}

type fakeStore struct {
	mu  sync.Mutex
	pdf []byte
	err error
}

func (f *fakeStore) Publish(ctx context.Context, pdf []byte) (domain.PublishAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return domain.PublishAck{}, f.err
	}
	f.pdf = append([]byte(nil), pdf...)
	return domain.PublishAck{Key: "mem", Size: len(pdf), PublishedAt: time.Now()}, nil
}

func (f *fakeStore) Retrieve(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pdf == nil {
		return nil, common.ErrNotPublished
	}
	return f.pdf, nil
}

var errBoom = errors.New("boom")

func date(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func sampleSnapshot() domain.Snapshot {
	end := date(2021, time.June)
	return domain.Snapshot{
		Profile: &domain.Profile{
			Name:         "Ana Ruiz",
			Avatar:       "https://example.com/a.png",
			Email:        "ana@example.com",
			City:         "Sevilla",
			Country:      "España",
			PortfolioURL: "https://ana.dev",
			Title:        locale.T("Desarrolladora", "Developer"),
			SocialLinks:  []domain.SocialLink{{Label: "GitHub", URL: "https://github.com/ana"}},
		},
		Projects: []domain.Project{
			{ID: 2, Title: locale.T("Tienda", "Shop"), TechStack: []string{"Go"}, IsVisible: true},
			{ID: 1, Title: locale.T("Oculto", ""), IsVisible: false, IsVisibleInPDF: true},
		},
		Experience: []domain.Experience{
			{ID: 1, Position: locale.T("Becaria", "Intern"), Company: "Old", StartDate: date(2020, time.January), EndDate: &end, IsVisible: true, IsVisibleInPDF: true},
			{ID: 2, Position: locale.T("Backend", ""), Company: "Acme", StartDate: date(2022, time.January), IsVisible: true, IsVisibleInPDF: true, ShowDescriptionInPDF: true},
		},
		Education: []domain.Education{
			{ID: 1, Degree: locale.T("Grado", "Degree"), School: "US", StartDate: date(2015, time.September), EndDate: &end, IsVisible: false, IsVisibleInPDF: true},
		},
		Skills: []domain.Skill{
			{ID: 1, Name: "Go", Category: locale.T("Lenguajes", "Languages"), IsVisible: true},
			{ID: 2, Name: "Docker", Category: locale.T("Herramientas", "Tools"), IsVisible: true},
			{ID: 3, Name: "TS", Category: locale.T("Lenguajes", "Languages"), IsVisible: true},
			{ID: 4, Name: "COBOL", Category: locale.T("Lenguajes", "Languages"), IsVisible: false},
		},
		Languages: []domain.Language{
			{ID: 1, Name: locale.T("Inglés", "English"), Level: locale.T("B2", ""), IsVisible: true},
		},
	}
}
