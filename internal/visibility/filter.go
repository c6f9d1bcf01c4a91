// Package visibility projects content collections onto a surface. Every
// function returns a fresh slice; inputs are never modified.
package visibility

import (
	"sort"
	"time"

	"github.com/iggarsaudev/career-hub/internal/domain"
	"github.com/iggarsaudev/career-hub/internal/locale"
)

// Experience keeps the records visible on s, newest first. Records sharing a
// start date keep creation order, then id order. On the pdf
// surface a record with ShowDescriptionInPDF unset loses its description.
func Experience(records []domain.Experience, s domain.Surface) []domain.Experience {
	out := make([]domain.Experience, 0, len(records))
	for _, r := range records {
		if !visible(s, r.IsVisible, r.IsVisibleInPDF) {
			continue
		}
		if s == domain.SurfacePDF && !r.ShowDescriptionInPDF {
			r.Description = locale.Text{}
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return newestFirst(out[i].StartDate, out[j].StartDate, out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out
}

// Education mirrors Experience.
func Education(records []domain.Education, s domain.Surface) []domain.Education {
	out := make([]domain.Education, 0, len(records))
	for _, r := range records {
		if !visible(s, r.IsVisible, r.IsVisibleInPDF) {
			continue
		}
		if s == domain.SurfacePDF && !r.ShowDescriptionInPDF {
			r.Description = locale.Text{}
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return newestFirst(out[i].StartDate, out[j].StartDate, out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out
}

func Projects(records []domain.Project, s domain.Surface) []domain.Project {
	out := make([]domain.Project, 0, len(records))
	for _, r := range records {
		if visible(s, r.IsVisible, r.IsVisibleInPDF) {
			r.TechStack = append([]string(nil), r.TechStack...)
			out = append(out, r)
		}
	}
	return out
}

// Skills have no pdf flag: the pdf surface keeps every record.
func Skills(records []domain.Skill, s domain.Surface) []domain.Skill {
	out := make([]domain.Skill, 0, len(records))
	for _, r := range records {
		if s == domain.SurfacePDF || r.IsVisible {
			out = append(out, r)
		}
	}
	return out
}

// Languages have no pdf flag: the pdf surface keeps every record.
func Languages(records []domain.Language, s domain.Surface) []domain.Language {
	out := make([]domain.Language, 0, len(records))
	for _, r := range records {
		if s == domain.SurfacePDF || r.IsVisible {
			out = append(out, r)
		}
	}
	return out
}

func visible(s domain.Surface, public, pdf bool) bool {
	if s == domain.SurfacePDF {
		return pdf
	}
	return public
}

// newestFirst orders by start date descending. Ties fall back to creation
// time ascending, then id ascending.
func newestFirst(startA, startB, createdA, createdB time.Time, idA, idB int) bool {
	if !startA.Equal(startB) {
		return startA.After(startB)
	}
	if !createdA.Equal(createdB) {
		return createdA.Before(createdB)
	}
	return idA < idB
}
