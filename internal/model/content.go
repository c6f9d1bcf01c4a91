// Package model holds the JSON wire shapes of the content collections, as
// served by the content API and produced by the Postgres aggregation
// queries, and converts them into domain records.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Profile struct {
	ID             int          `json:"id,omitempty"`
	Name           string       `json:"name"`
	Email          string       `json:"email,omitempty"`
	Avatar         string       `json:"avatar,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	City           string       `json:"city,omitempty"`
	Country        string       `json:"country,omitempty"`
	Location       string       `json:"location,omitempty"`
	DrivingLicense string       `json:"drivingLicense,omitempty"`
	BirthDate      *Date        `json:"birthDate,omitempty"`
	LinkedIn       string       `json:"linkedin,omitempty"`
	GitHub         string       `json:"github,omitempty"`
	Website        string       `json:"website,omitempty"`
	PortfolioURL   string       `json:"portfolioUrl,omitempty"`
	SocialLinks    []SocialLink `json:"socialLinks,omitempty"`
	Title          string       `json:"title,omitempty"`
	TitleEN        string       `json:"title_en,omitempty"`
	Summary        string       `json:"summary,omitempty"`
	SummaryEN      string       `json:"summary_en,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	BioEN          string       `json:"bio_en,omitempty"`
}

type Project struct {
	ID             int      `json:"id"`
	Slug           string   `json:"slug,omitempty"`
	Title          string   `json:"title"`
	TitleEN        string   `json:"title_en,omitempty"`
	Description    string   `json:"description,omitempty"`
	DescriptionEN  string   `json:"description_en,omitempty"`
	Image          string   `json:"image,omitempty"`
	TechStack      []string `json:"techStack,omitempty"`
	RepoURL        string   `json:"repoUrl,omitempty"`
	DemoURL        string   `json:"demoUrl,omitempty"`
	IsVisible      *bool    `json:"isVisible,omitempty"`
	IsVisibleInPDF *bool    `json:"isVisibleInPdf,omitempty"`
}

type Experience struct {
	ID                   int    `json:"id"`
	Position             string `json:"position"`
	PositionEN           string `json:"position_en,omitempty"`
	Company              string `json:"company"`
	Location             string `json:"location,omitempty"`
	StartDate            Date   `json:"startDate"`
	EndDate              *Date  `json:"endDate"`
	Description          string `json:"description,omitempty"`
	DescriptionEN        string `json:"description_en,omitempty"`
	IsVisible            *bool  `json:"isVisible,omitempty"`
	IsVisibleInPDF       *bool  `json:"isVisibleInPdf,omitempty"`
	ShowDescriptionInPDF *bool  `json:"showDescriptionInPdf,omitempty"`
	CreatedAt            *Date  `json:"createdAt,omitempty"`
}

type Education struct {
	ID                   int    `json:"id"`
	Degree               string `json:"degree"`
	DegreeEN             string `json:"degree_en,omitempty"`
	School               string `json:"school"`
	StartDate            Date   `json:"startDate"`
	EndDate              *Date  `json:"endDate"`
	Description          string `json:"description,omitempty"`
	DescriptionEN        string `json:"description_en,omitempty"`
	IsVisible            *bool  `json:"isVisible,omitempty"`
	IsVisibleInPDF       *bool  `json:"isVisibleInPdf,omitempty"`
	ShowDescriptionInPDF *bool  `json:"showDescriptionInPdf,omitempty"`
	CreatedAt            *Date  `json:"createdAt,omitempty"`
}

type Skill struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	CategoryEN string `json:"category_en,omitempty"`
	IsVisible  *bool  `json:"isVisible,omitempty"`
}

type Language struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	NameEN    string `json:"name_en,omitempty"`
	Level     string `json:"level,omitempty"`
	LevelEN   string `json:"level_en,omitempty"`
	IsVisible *bool  `json:"isVisible,omitempty"`
}

// Date accepts the ISO-8601 shapes the collaborators emit: full RFC 3339
// timestamps, Postgres timestamps without zone and plain dates.
type Date struct {
	time.Time
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t.UTC()}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognised date %q", s)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339))
}
