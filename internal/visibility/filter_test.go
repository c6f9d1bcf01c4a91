package visibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iggarsaudev/career-hub/internal/domain"
	"github.com/iggarsaudev/career-hub/internal/locale"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func experiences() []domain.Experience {
	return []domain.Experience{
		{ID: 1, Company: "A", StartDate: date(2020, 1, 1), IsVisible: true, IsVisibleInPDF: true, ShowDescriptionInPDF: true, Description: locale.T("uno", "one")},
		{ID: 2, Company: "B", StartDate: date(2023, 6, 1), IsVisible: false, IsVisibleInPDF: true, ShowDescriptionInPDF: false, Description: locale.T("dos", "two")},
		{ID: 3, Company: "C", StartDate: date(2019, 3, 1), IsVisible: true, IsVisibleInPDF: true, ShowDescriptionInPDF: true},
		{ID: 4, Company: "D", StartDate: date(2021, 1, 1), IsVisible: true, IsVisibleInPDF: false, Description: locale.T("cuatro", "")},
	}
}

func ids(rs []domain.Experience) []int {
	out := make([]int, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestExperience_PDFSurface(t *testing.T) {
	got := Experience(experiences(), domain.SurfacePDF)

	assert.Equal(t, []int{2, 1, 3}, ids(got))
	assert.Equal(t, locale.Text{}, got[0].Description)
	assert.Equal(t, "uno", got[1].Description.Base)
}

func TestExperience_PublicSurface(t *testing.T) {
	got := Experience(experiences(), domain.SurfacePublic)

	assert.Equal(t, []int{4, 1, 3}, ids(got))
	assert.Equal(t, "cuatro", got[0].Description.Base)
}

func TestExperience_DescriptionSuppressionIsAProjection(t *testing.T) {
	in := experiences()
	in[1].IsVisible = true

	pdf := Experience(in, domain.SurfacePDF)
	public := Experience(in, domain.SurfacePublic)

	assert.Empty(t, pdf[0].Description.Base)
	require.Equal(t, 2, public[0].ID)
	assert.Equal(t, "dos", public[0].Description.Base)
	assert.Equal(t, "dos", in[1].Description.Base, "input must not change")
}

func TestExperience_Idempotent(t *testing.T) {
	for _, s := range []domain.Surface{domain.SurfacePDF, domain.SurfacePublic} {
		once := Experience(experiences(), s)
		twice := Experience(once, s)
		assert.Equal(t, once, twice, string(s))
	}
}

func TestExperience_TiesFollowCreationOrder(t *testing.T) {
	same := date(2022, 1, 1)
	in := []domain.Experience{
		{ID: 2, StartDate: same, CreatedAt: date(2024, 5, 1), IsVisibleInPDF: true},
		{ID: 11, StartDate: date(2024, 1, 1), IsVisibleInPDF: true},
		{ID: 1, StartDate: same, CreatedAt: date(2023, 5, 1), IsVisibleInPDF: true},
	}
	assert.Equal(t, []int{11, 1, 2}, ids(Experience(in, domain.SurfacePDF)))
}

func TestExperience_TiesWithoutCreationTimeUseID(t *testing.T) {
	same := date(2022, 1, 1)
	in := []domain.Experience{
		{ID: 12, StartDate: same, IsVisibleInPDF: true},
		{ID: 10, StartDate: same, IsVisibleInPDF: true},
	}
	assert.Equal(t, []int{10, 12}, ids(Experience(in, domain.SurfacePDF)))
}

func TestEducation_TiesFollowCreationOrder(t *testing.T) {
	same := date(2014, 9, 1)
	in := []domain.Education{
		{ID: 7, StartDate: same, CreatedAt: date(2024, 2, 1), IsVisible: true},
		{ID: 3, StartDate: same, CreatedAt: date(2024, 2, 1), IsVisible: true},
		{ID: 5, StartDate: same, CreatedAt: date(2023, 2, 1), IsVisible: true},
	}
	got := Education(in, domain.SurfacePublic)

	require.Len(t, got, 3)
	assert.Equal(t, []int{5, 3, 7}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestEducation_PDFSurface(t *testing.T) {
	in := []domain.Education{
		{ID: 1, StartDate: date(2010, 9, 1), IsVisibleInPDF: true, ShowDescriptionInPDF: false, Description: locale.T("x", "y")},
		{ID: 2, StartDate: date(2015, 9, 1), IsVisibleInPDF: true, ShowDescriptionInPDF: true, Description: locale.T("z", "")},
		{ID: 3, StartDate: date(2018, 9, 1), IsVisible: true},
	}
	got := Education(in, domain.SurfacePDF)

	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, "z", got[0].Description.Base)
	assert.Equal(t, 1, got[1].ID)
	assert.True(t, got[1].Description.IsZero())
	assert.Equal(t, got, Education(got, domain.SurfacePDF))
}

func TestProjects(t *testing.T) {
	in := []domain.Project{
		{ID: 1, IsVisible: true, TechStack: []string{"Go"}},
		{ID: 2, IsVisibleInPDF: true},
	}
	public := Projects(in, domain.SurfacePublic)
	require.Len(t, public, 1)
	assert.Equal(t, 1, public[0].ID)

	public[0].TechStack[0] = "Rust"
	assert.Equal(t, "Go", in[0].TechStack[0])

	pdf := Projects(in, domain.SurfacePDF)
	require.Len(t, pdf, 1)
	assert.Equal(t, 2, pdf[0].ID)
}

func TestSkillsAndLanguages(t *testing.T) {
	skills := []domain.Skill{{ID: 1, IsVisible: true}, {ID: 2}}
	assert.Len(t, Skills(skills, domain.SurfacePublic), 1)
	assert.Len(t, Skills(skills, domain.SurfacePDF), 2)

	langs := []domain.Language{{ID: 1}, {ID: 2, IsVisible: true}}
	assert.Len(t, Languages(langs, domain.SurfacePublic), 1)
	assert.Len(t, Languages(langs, domain.SurfacePDF), 2)
}
