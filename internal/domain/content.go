package domain

import (
	"time"

	"github.com/iggarsaudev/career-hub/internal/locale"
)

type SocialLink struct {
	Label string
	URL   string
}

// Profile is the singleton owner record.
type Profile struct {
	Name           string
	Email          string
	Avatar         string
	Phone          string
	City           string
	Country        string
	Location       string
	DrivingLicense string
	BirthDate      *time.Time
	SocialLinks    []SocialLink
	PortfolioURL   string
	Title          locale.Text
	Summary        locale.Text
	Bio            locale.Text
}

// Place returns the free-form location when set, "City, Country" otherwise.
func (p Profile) Place() string {
	if p.Location != "" {
		return p.Location
	}
	switch {
	case p.City != "" && p.Country != "":
		return p.City + ", " + p.Country
	case p.City != "":
		return p.City
	default:
		return p.Country
	}
}

type Project struct {
	ID             int
	Slug           string
	Title          locale.Text
	Description    locale.Text
	Image          string
	TechStack      []string
	RepoURL        string
	DemoURL        string
	IsVisible      bool
	IsVisibleInPDF bool
}

// Experience is a job entry. A nil EndDate means the role is ongoing.
type Experience struct {
	ID                   int
	Position             locale.Text
	Company              string
	Location             string
	StartDate            time.Time
	EndDate              *time.Time
	Description          locale.Text
	IsVisible            bool
	IsVisibleInPDF       bool
	ShowDescriptionInPDF bool
	CreatedAt            time.Time
}

// Education is a study entry. A nil EndDate means it is still in progress.
type Education struct {
	ID                   int
	Degree               locale.Text
	School               string
	StartDate            time.Time
	EndDate              *time.Time
	Description          locale.Text
	IsVisible            bool
	IsVisibleInPDF       bool
	ShowDescriptionInPDF bool
	CreatedAt            time.Time
}

type Skill struct {
	ID        int
	Name      string
	Category  locale.Text
	IsVisible bool
}

// Language is a spoken language, not a UI language.
type Language struct {
	ID        int
	Name      locale.Text
	Level     locale.Text
	IsVisible bool
}

// Snapshot is one consistent read of every content collection.
type Snapshot struct {
	Profile    *Profile
	Projects   []Project
	Experience []Experience
	Education  []Education
	Skills     []Skill
	Languages  []Language
}
