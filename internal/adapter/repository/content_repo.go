package repository

import (
	"context"
	"fmt"

	"github.com/iggarsaudev/career-hub/internal/domain"
	"github.com/iggarsaudev/career-hub/internal/model"
)

// Each query aggregates a whole collection into one JSON value whose keys
// match the content API payloads, so both sources share one decoder.
const (
	profileSQL = `SELECT coalesce((SELECT row_to_json(p) FROM (
		SELECT id, name, email, avatar, phone, city, country, location,
		       driving_license AS "drivingLicense", birth_date AS "birthDate",
		       linkedin, github, website, portfolio_url AS "portfolioUrl",
		       title, title_en, summary, summary_en, bio, bio_en
		FROM profiles ORDER BY id LIMIT 1) p), 'null'::json)`

	projectsSQL = `SELECT coalesce(json_agg(row_to_json(p) ORDER BY p.id DESC), '[]') FROM (
		SELECT id, slug, title, title_en, description, description_en, image,
		       tech_stack AS "techStack", repo_url AS "repoUrl", demo_url AS "demoUrl",
		       is_visible AS "isVisible", is_visible_in_pdf AS "isVisibleInPdf"
		FROM projects) p`

	experienceSQL = `SELECT coalesce(json_agg(row_to_json(e) ORDER BY e."startDate" DESC, e.id), '[]') FROM (
		SELECT id, position, position_en, company, location,
		       start_date AS "startDate", end_date AS "endDate",
		       description, description_en, is_visible AS "isVisible",
		       is_visible_in_pdf AS "isVisibleInPdf", show_description_in_pdf AS "showDescriptionInPdf",
		       created_at AS "createdAt"
		FROM experiences) e`

	educationSQL = `SELECT coalesce(json_agg(row_to_json(e) ORDER BY e."startDate" DESC, e.id), '[]') FROM (
		SELECT id, degree, degree_en, school,
		       start_date AS "startDate", end_date AS "endDate",
		       description, description_en, is_visible AS "isVisible",
		       is_visible_in_pdf AS "isVisibleInPdf", show_description_in_pdf AS "showDescriptionInPdf",
		       created_at AS "createdAt"
		FROM education) e`

	skillsSQL = `SELECT coalesce(json_agg(row_to_json(s) ORDER BY s.id), '[]') FROM (
		SELECT id, name, category, category_en, is_visible AS "isVisible" FROM skills) s`

	languagesSQL = `SELECT coalesce(json_agg(row_to_json(l) ORDER BY l.id), '[]') FROM (
		SELECT id, name, name_en, level, level_en, is_visible AS "isVisible" FROM languages) l`
)

// ContentRepo reads the content collections straight from Postgres.
type ContentRepo struct {
	db rowQuerier
}

func NewContentRepo(db rowQuerier) *ContentRepo {
	return &ContentRepo{db: db}
}

func (r *ContentRepo) load(ctx context.Context, name, sql string) ([]byte, error) {
	raw, err := queryJSON(ctx, r.db, sql)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	return raw, nil
}

func (r *ContentRepo) Profile(ctx context.Context) (*domain.Profile, error) {
	raw, err := r.load(ctx, model.CollectionProfile, profileSQL)
	if err != nil {
		return nil, err
	}
	return model.DecodeProfile(raw)
}

func (r *ContentRepo) Projects(ctx context.Context) ([]domain.Project, error) {
	raw, err := r.load(ctx, model.CollectionProjects, projectsSQL)
	if err != nil {
		return nil, err
	}
	return model.DecodeProjects(raw)
}

func (r *ContentRepo) Experience(ctx context.Context) ([]domain.Experience, error) {
	raw, err := r.load(ctx, model.CollectionExperience, experienceSQL)
	if err != nil {
		return nil, err
	}
	return model.DecodeExperience(raw)
}

func (r *ContentRepo) Education(ctx context.Context) ([]domain.Education, error) {
	raw, err := r.load(ctx, model.CollectionEducation, educationSQL)
	if err != nil {
		return nil, err
	}
	return model.DecodeEducation(raw)
}

func (r *ContentRepo) Skills(ctx context.Context) ([]domain.Skill, error) {
	raw, err := r.load(ctx, model.CollectionSkills, skillsSQL)
	if err != nil {
		return nil, err
	}
	return model.DecodeSkills(raw)
}

func (r *ContentRepo) Languages(ctx context.Context) ([]domain.Language, error) {
	raw, err := r.load(ctx, model.CollectionLanguages, languagesSQL)
	if err != nil {
		return nil, err
	}
	return model.DecodeLanguages(raw)
}
