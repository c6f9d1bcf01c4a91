package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iggarsaudev/career-hub/internal/domain"
	"github.com/iggarsaudev/career-hub/internal/locale"
)

// decode validates raw against the collection schema and unmarshals it.
func decode(collection string, raw []byte, dst any) error {
	if err := Validate(collection, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// DecodeProfile returns nil without error when the payload is JSON null.
func DecodeProfile(raw []byte) (*domain.Profile, error) {
	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return nil, nil
	}
	var p Profile
	if err := decode(CollectionProfile, raw, &p); err != nil {
		return nil, err
	}
	return p.Domain(), nil
}

func DecodeProjects(raw []byte) ([]domain.Project, error) {
	var in []Project
	if err := decode(CollectionProjects, raw, &in); err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(in))
	for _, p := range in {
		out = append(out, p.Domain())
	}
	return out, nil
}

func DecodeExperience(raw []byte) ([]domain.Experience, error) {
	var in []Experience
	if err := decode(CollectionExperience, raw, &in); err != nil {
		return nil, err
	}
	out := make([]domain.Experience, 0, len(in))
	for _, e := range in {
		out = append(out, e.Domain())
	}
	return out, nil
}

func DecodeEducation(raw []byte) ([]domain.Education, error) {
	var in []Education
	if err := decode(CollectionEducation, raw, &in); err != nil {
		return nil, err
	}
	out := make([]domain.Education, 0, len(in))
	for _, e := range in {
		out = append(out, e.Domain())
	}
	return out, nil
}

func DecodeSkills(raw []byte) ([]domain.Skill, error) {
	var in []Skill
	if err := decode(CollectionSkills, raw, &in); err != nil {
		return nil, err
	}
	out := make([]domain.Skill, 0, len(in))
	for _, s := range in {
		out = append(out, s.Domain())
	}
	return out, nil
}

func DecodeLanguages(raw []byte) ([]domain.Language, error) {
	var in []Language
	if err := decode(CollectionLanguages, raw, &in); err != nil {
		return nil, err
	}
	out := make([]domain.Language, 0, len(in))
	for _, l := range in {
		out = append(out, l.Domain())
	}
	return out, nil
}

// Flags missing from a payload default to true, as the records are created.
func flag(b *bool) bool {
	return b == nil || *b
}

func datePtr(d *Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func dateValue(d *Date) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

func (p Profile) Domain() *domain.Profile {
	out := &domain.Profile{
		Name:           p.Name,
		Email:          p.Email,
		Avatar:         p.Avatar,
		Phone:          p.Phone,
		City:           p.City,
		Country:        p.Country,
		Location:       p.Location,
		DrivingLicense: p.DrivingLicense,
		BirthDate:      datePtr(p.BirthDate),
		PortfolioURL:   p.PortfolioURL,
		Title:          locale.T(p.Title, p.TitleEN),
		Summary:        locale.T(p.Summary, p.SummaryEN),
		Bio:            locale.T(p.Bio, p.BioEN),
	}
	for _, l := range p.SocialLinks {
		out.SocialLinks = append(out.SocialLinks, domain.SocialLink{Label: l.Label, URL: l.URL})
	}
	if len(out.SocialLinks) == 0 {
		for _, l := range []domain.SocialLink{
			{Label: "LinkedIn", URL: p.LinkedIn},
			{Label: "GitHub", URL: p.GitHub},
			{Label: "Web", URL: p.Website},
		} {
			if l.URL != "" {
				out.SocialLinks = append(out.SocialLinks, l)
			}
		}
	}
	return out
}

func (p Project) Domain() domain.Project {
	return domain.Project{
		ID:             p.ID,
		Slug:           p.Slug,
		Title:          locale.T(p.Title, p.TitleEN),
		Description:    locale.T(p.Description, p.DescriptionEN),
		Image:          p.Image,
		TechStack:      append([]string(nil), p.TechStack...),
		RepoURL:        p.RepoURL,
		DemoURL:        p.DemoURL,
		IsVisible:      flag(p.IsVisible),
		IsVisibleInPDF: flag(p.IsVisibleInPDF),
	}
}

func (e Experience) Domain() domain.Experience {
	return domain.Experience{
		ID:                   e.ID,
		Position:             locale.T(e.Position, e.PositionEN),
		Company:              e.Company,
		Location:             e.Location,
		StartDate:            e.StartDate.Time,
		EndDate:              datePtr(e.EndDate),
		Description:          locale.T(e.Description, e.DescriptionEN),
		IsVisible:            flag(e.IsVisible),
		IsVisibleInPDF:       flag(e.IsVisibleInPDF),
		ShowDescriptionInPDF: flag(e.ShowDescriptionInPDF),
		CreatedAt:            dateValue(e.CreatedAt),
	}
}

func (e Education) Domain() domain.Education {
	return domain.Education{
		ID:                   e.ID,
		Degree:               locale.T(e.Degree, e.DegreeEN),
		School:               e.School,
		StartDate:            e.StartDate.Time,
		EndDate:              datePtr(e.EndDate),
		Description:          locale.T(e.Description, e.DescriptionEN),
		IsVisible:            flag(e.IsVisible),
		IsVisibleInPDF:       flag(e.IsVisibleInPDF),
		ShowDescriptionInPDF: flag(e.ShowDescriptionInPDF),
		CreatedAt:            dateValue(e.CreatedAt),
	}
}

func (s Skill) Domain() domain.Skill {
	return domain.Skill{
		ID:        s.ID,
		Name:      s.Name,
		Category:  locale.T(s.Category, s.CategoryEN),
		IsVisible: flag(s.IsVisible),
	}
}

func (l Language) Domain() domain.Language {
	return domain.Language{
		ID:        l.ID,
		Name:      locale.T(l.Name, l.NameEN),
		Level:     locale.T(l.Level, l.LevelEN),
		IsVisible: flag(l.IsVisible),
	}
}

// DecodeSnapshot reads a document holding every collection under its own
// key. Missing keys decode as empty.
func DecodeSnapshot(raw []byte) (domain.Snapshot, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	part := func(key string) []byte {
		if v, ok := doc[key]; ok {
			return v
		}
		return []byte("[]")
	}

	var s domain.Snapshot
	var err error
	if s.Profile, err = DecodeProfile(doc[CollectionProfile]); err != nil {
		return domain.Snapshot{}, err
	}
	if s.Projects, err = DecodeProjects(part(CollectionProjects)); err != nil {
		return domain.Snapshot{}, err
	}
	if s.Experience, err = DecodeExperience(part(CollectionExperience)); err != nil {
		return domain.Snapshot{}, err
	}
	if s.Education, err = DecodeEducation(part(CollectionEducation)); err != nil {
		return domain.Snapshot{}, err
	}
	if s.Skills, err = DecodeSkills(part(CollectionSkills)); err != nil {
		return domain.Snapshot{}, err
	}
	if s.Languages, err = DecodeLanguages(part(CollectionLanguages)); err != nil {
		return domain.Snapshot{}, err
	}
	return s, nil
}
