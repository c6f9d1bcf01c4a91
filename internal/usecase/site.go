package usecase

import (
	"context"
	"time"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/domain"
	"github.com/iggarsaudev/career-hub/internal/locale"
	"github.com/iggarsaudev/career-hub/internal/visibility"
)

type LinkView struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type ProfileView struct {
	Name         string     `json:"name"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary,omitempty"`
	Bio          string     `json:"bio,omitempty"`
	Avatar       string     `json:"avatar,omitempty"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Location     string     `json:"location,omitempty"`
	PortfolioURL string     `json:"portfolioUrl,omitempty"`
	SocialLinks  []LinkView `json:"socialLinks"`
}

type ProjectView struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	TechStack   []string `json:"techStack"`
	RepoURL     string   `json:"repoUrl,omitempty"`
	DemoURL     string   `json:"demoUrl,omitempty"`
}

type ExperienceView struct {
	ID          int        `json:"id"`
	Position    string     `json:"position"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Period      string     `json:"period"`
	Description string     `json:"description"`
}

type EducationView struct {
	ID          int        `json:"id"`
	Degree      string     `json:"degree"`
	School      string     `json:"school"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Period      string     `json:"period"`
	Description string     `json:"description"`
}

type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

type LanguageView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

// SiteView is the whole public portfolio in one language.
type SiteView struct {
	Lang       locale.Lang      `json:"lang"`
	Profile    *ProfileView     `json:"profile"`
	Projects   []ProjectView    `json:"projects"`
	Experience []ExperienceView `json:"experience"`
	Education  []EducationView  `json:"education"`
	Skills     []SkillGroup     `json:"skills"`
	Languages  []LanguageView   `json:"languages"`
}

// Site serves the public surface: resolved to one language and filtered by
// the public visibility flags.
type Site struct {
	source ContentSource
}

func NewSite(src ContentSource) *Site {
	return &Site{source: src}
}

// View returns the full public page. A missing profile leaves Profile nil;
// the rest of the page is still served.
func (s *Site) View(ctx context.Context, lang locale.Lang) (SiteView, error) {
	snap, err := FetchSnapshot(ctx, s.source)
	if err != nil {
		return SiteView{}, err
	}
	v := SiteView{
		Lang:       lang,
		Projects:   projectViews(snap.Projects, lang),
		Experience: experienceViews(snap.Experience, lang),
		Education:  educationViews(snap.Education, lang),
		Skills:     skillGroups(snap.Skills, lang),
		Languages:  languageViews(snap.Languages, lang),
	}
	if snap.Profile != nil {
		pv := profileView(*snap.Profile, lang)
		v.Profile = &pv
	}
	return v, nil
}

// Profile returns ErrMissingProfile when none exists.
func (s *Site) Profile(ctx context.Context, lang locale.Lang) (ProfileView, error) {
	p, err := s.source.Profile(ctx)
	if err != nil {
		return ProfileView{}, wrapFetch("profile", err)
	}
	if p == nil {
		return ProfileView{}, common.ErrMissingProfile
	}
	return profileView(*p, lang), nil
}

func (s *Site) Projects(ctx context.Context, lang locale.Lang) ([]ProjectView, error) {
	recs, err := s.source.Projects(ctx)
	if err != nil {
		return nil, wrapFetch("projects", err)
	}
	return projectViews(recs, lang), nil
}

func (s *Site) Experience(ctx context.Context, lang locale.Lang) ([]ExperienceView, error) {
	recs, err := s.source.Experience(ctx)
	if err != nil {
		return nil, wrapFetch("experience", err)
	}
	return experienceViews(recs, lang), nil
}

func (s *Site) Education(ctx context.Context, lang locale.Lang) ([]EducationView, error) {
	recs, err := s.source.Education(ctx)
	if err != nil {
		return nil, wrapFetch("education", err)
	}
	return educationViews(recs, lang), nil
}

func (s *Site) Skills(ctx context.Context, lang locale.Lang) ([]SkillGroup, error) {
	recs, err := s.source.Skills(ctx)
	if err != nil {
		return nil, wrapFetch("skills", err)
	}
	return skillGroups(recs, lang), nil
}

func (s *Site) Languages(ctx context.Context, lang locale.Lang) ([]LanguageView, error) {
	recs, err := s.source.Languages(ctx)
	if err != nil {
		return nil, wrapFetch("languages", err)
	}
	return languageViews(recs, lang), nil
}

func profileView(p domain.Profile, lang locale.Lang) ProfileView {
	links := make([]LinkView, 0, len(p.SocialLinks))
	for _, l := range p.SocialLinks {
		links = append(links, LinkView{Label: l.Label, URL: l.URL})
	}
	return ProfileView{
		Name:         p.Name,
		Title:        p.Title.Resolve(lang),
		Summary:      p.Summary.Resolve(lang),
		Bio:          p.Bio.Resolve(lang),
		Avatar:       p.Avatar,
		Email:        p.Email,
		Phone:        p.Phone,
		Location:     p.Place(),
		PortfolioURL: p.PortfolioURL,
		SocialLinks:  links,
	}
}

func projectViews(recs []domain.Project, lang locale.Lang) []ProjectView {
	recs = visibility.Projects(recs, domain.SurfacePublic)
	out := make([]ProjectView, 0, len(recs))
	for _, r := range recs {
		out = append(out, ProjectView{
			ID:          r.ID,
			Slug:        r.Slug,
			Title:       r.Title.Resolve(lang),
			Description: r.Description.Resolve(lang),
			Image:       r.Image,
			TechStack:   r.TechStack,
			RepoURL:     r.RepoURL,
			DemoURL:     r.DemoURL,
		})
	}
	return out
}

func experienceViews(recs []domain.Experience, lang locale.Lang) []ExperienceView {
	recs = visibility.Experience(recs, domain.SurfacePublic)
	out := make([]ExperienceView, 0, len(recs))
	for _, r := range recs {
		out = append(out, ExperienceView{
			ID:          r.ID,
			Position:    r.Position.Resolve(lang),
			Company:     r.Company,
			Location:    r.Location,
			StartDate:   r.StartDate,
			EndDate:     r.EndDate,
			Period:      locale.FormatRange(r.StartDate, r.EndDate, lang, locale.FormatMonthYear),
			Description: r.Description.Resolve(lang),
		})
	}
	return out
}

func educationViews(recs []domain.Education, lang locale.Lang) []EducationView {
	recs = visibility.Education(recs, domain.SurfacePublic)
	out := make([]EducationView, 0, len(recs))
	for _, r := range recs {
		out = append(out, EducationView{
			ID:          r.ID,
			Degree:      r.Degree.Resolve(lang),
			School:      r.School,
			StartDate:   r.StartDate,
			EndDate:     r.EndDate,
			Period:      locale.FormatRange(r.StartDate, r.EndDate, lang, locale.FormatYear),
			Description: r.Description.Resolve(lang),
		})
	}
	return out
}

// skillGroups groups visible skills by resolved category in order of first
// appearance.
func skillGroups(recs []domain.Skill, lang locale.Lang) []SkillGroup {
	recs = visibility.Skills(recs, domain.SurfacePublic)
	out := make([]SkillGroup, 0)
	index := make(map[string]int)
	for _, r := range recs {
		cat := r.Category.Resolve(lang)
		i, ok := index[cat]
		if !ok {
			i = len(out)
			index[cat] = i
			out = append(out, SkillGroup{Category: cat})
		}
		out[i].Skills = append(out[i].Skills, r.Name)
	}
	return out
}

func languageViews(recs []domain.Language, lang locale.Lang) []LanguageView {
	recs = visibility.Languages(recs, domain.SurfacePublic)
	out := make([]LanguageView, 0, len(recs))
	for _, r := range recs {
		out = append(out, LanguageView{ID: r.ID, Name: r.Name.Resolve(lang), Level: r.Level.Resolve(lang)})
	}
	return out
}
