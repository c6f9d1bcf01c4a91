package document

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/domain"
	"github.com/iggarsaudev/career-hub/internal/locale"
	"github.com/iggarsaudev/career-hub/internal/visibility"
)

// Input is everything the CV is built from. Experience and Education may be
// passed unfiltered; Skills and Languages are printed as given.
type Input struct {
	Profile    *domain.Profile
	Experience []domain.Experience
	Education  []domain.Education
	Skills     []domain.Skill
	Languages  []domain.Language
	// QR is the pre-rendered portfolio code. Nil leaves it out.
	QR   *Image
	Lang locale.Lang
}

// Assemble builds the CV document. It fails only when the profile is absent;
// every other missing piece drops its block.
func Assemble(in Input) (*Document, error) {
	if in.Profile == nil {
		return nil, common.ErrMissingProfile
	}
	lang := in.Lang
	if lang == "" {
		lang = locale.Default
	}
	p := in.Profile
	l := locale.LabelsFor(lang)

	doc := &Document{
		Meta: Meta{
			Title:    "CV " + p.Name,
			Author:   p.Name,
			Lang:     lang,
			FileName: FileName(p.Name),
		},
		Page: Page{
			Size: A4,
			Background: Background{
				Region:       RegionSidebar,
				Color:        SidebarColor,
				WidthPercent: SidebarWidthPercent,
			},
			Sidebar: Region{Kind: RegionSidebar},
			Main:    Region{Kind: RegionMain},
		},
	}

	side := &doc.Page.Sidebar.Blocks
	appendBlock(side, avatarBlock(p))
	appendBlock(side, contactBlock(p, l, lang))
	appendBlock(side, socialBlock(p, in.QR, l))
	appendBlock(side, skillsBlock(in.Skills, l))
	appendBlock(side, languagesBlock(in.Languages, l, lang))

	body := &doc.Page.Main.Blocks
	appendBlock(body, headerBlock(p, lang))
	appendBlock(body, profileBlock(p, l, lang))
	appendBlock(body, experienceBlock(visibility.Experience(in.Experience, domain.SurfacePDF), l, lang))
	appendBlock(body, educationBlock(visibility.Education(in.Education, domain.SurfacePDF), l, lang))

	return doc, nil
}

func appendBlock(dst *[]Block, b *Block) {
	if b != nil {
		*dst = append(*dst, *b)
	}
}

func text(style Style, s string) Node {
	return Node{Kind: NodeText, Style: style, Text: s}
}

func avatarBlock(p *domain.Profile) *Block {
	if strings.TrimSpace(p.Avatar) == "" {
		return nil
	}
	return &Block{
		Kind:  BlockAvatar,
		Nodes: []Node{{Kind: NodeImage, Style: StyleAvatar, Text: p.Name, Image: &Image{URL: p.Avatar}}},
	}
}

func contactBlock(p *domain.Profile, l locale.Labels, lang locale.Lang) *Block {
	var nodes []Node
	field := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			nodes = append(nodes, Node{Kind: NodeText, Style: StyleField, Label: label, Text: value})
		}
	}
	field(l.Location, p.Place())
	field(l.Phone, p.Phone)
	field(l.Email, p.Email)
	field(l.DrivingLicense, p.DrivingLicense)
	if p.BirthDate != nil {
		field(l.BirthDate, locale.FormatShortDate(*p.BirthDate, lang))
	}
	if len(nodes) == 0 {
		return nil
	}
	return &Block{Kind: BlockContact, Heading: l.Contact, Nodes: nodes, KeepTogether: true}
}

func socialBlock(p *domain.Profile, qr *Image, l locale.Labels) *Block {
	var nodes []Node
	for _, s := range p.SocialLinks {
		if strings.TrimSpace(s.URL) == "" {
			continue
		}
		label := s.Label
		if label == "" {
			label = siteName(s.URL)
		}
		nodes = append(nodes, Node{Kind: NodeLink, Style: StyleLink, Label: label, Text: displayURL(s.URL), Href: s.URL})
	}
	if qr != nil {
		nodes = append(nodes,
			Node{Kind: NodeImage, Style: StyleQR, Text: l.PortfolioQR, Image: qr},
			text(StyleCaption, l.PortfolioQR),
		)
	}
	if len(nodes) == 0 {
		return nil
	}
	return &Block{Kind: BlockSocial, Heading: l.Social, Nodes: nodes, KeepTogether: true}
}

func skillsBlock(skills []domain.Skill, l locale.Labels) *Block {
	if len(skills) == 0 {
		return nil
	}
	nodes := make([]Node, 0, len(skills))
	for _, s := range skills {
		nodes = append(nodes, text(StyleBadge, s.Name))
	}
	return &Block{Kind: BlockSkills, Heading: l.Skills, Nodes: nodes}
}

func languagesBlock(langs []domain.Language, l locale.Labels, lang locale.Lang) *Block {
	if len(langs) == 0 {
		return nil
	}
	nodes := make([]Node, 0, len(langs))
	for _, s := range langs {
		line := s.Name.Resolve(lang)
		if lvl := s.Level.Resolve(lang); lvl != "" {
			line += " (" + lvl + ")"
		}
		nodes = append(nodes, text(StyleListItem, line))
	}
	return &Block{Kind: BlockLanguages, Heading: l.Languages, Nodes: nodes}
}

func headerBlock(p *domain.Profile, lang locale.Lang) *Block {
	nodes := []Node{text(StyleName, p.Name)}
	if t := p.Title.Resolve(lang); t != "" {
		nodes = append(nodes, text(StyleTitle, t))
	}
	return &Block{Kind: BlockHeader, Nodes: nodes, KeepTogether: true}
}

func profileBlock(p *domain.Profile, l locale.Labels, lang locale.Lang) *Block {
	var nodes []Node
	for _, t := range []locale.Text{p.Summary, p.Bio} {
		if s := t.Resolve(lang); strings.TrimSpace(s) != "" {
			nodes = append(nodes, text(StyleBody, s))
		}
	}
	if len(nodes) == 0 {
		return nil
	}
	return &Block{Kind: BlockProfile, Heading: l.Profile, Nodes: nodes}
}

func experienceBlock(items []domain.Experience, l locale.Labels, lang locale.Lang) *Block {
	if len(items) == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(items))
	for _, e := range items {
		parts := []string{e.Position.Resolve(lang), e.Company}
		if e.Location != "" {
			parts = append(parts, e.Location)
		}
		nodes := []Node{
			text(StyleEntryTitle, strings.Join(nonEmpty(parts), ", ")),
			text(StyleEntryDate, locale.FormatRange(e.StartDate, e.EndDate, lang, locale.FormatMonthYear)),
		}
		if d := e.Description.Resolve(lang); strings.TrimSpace(d) != "" {
			nodes = append(nodes, text(StyleBody, d))
		}
		entries = append(entries, Entry{ID: e.ID, Nodes: nodes})
	}
	return &Block{Kind: BlockExperience, Heading: l.Experience, Entries: entries}
}

func educationBlock(items []domain.Education, l locale.Labels, lang locale.Lang) *Block {
	if len(items) == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(items))
	for _, e := range items {
		nodes := []Node{
			text(StyleEntryTitle, strings.Join(nonEmpty([]string{e.Degree.Resolve(lang), e.School}), ", ")),
			text(StyleEntryDate, locale.FormatRange(e.StartDate, e.EndDate, lang, locale.FormatYear)),
		}
		if d := e.Description.Resolve(lang); strings.TrimSpace(d) != "" {
			nodes = append(nodes, text(StyleBody, d))
		}
		entries = append(entries, Entry{ID: e.ID, Nodes: nodes})
	}
	return &Block{Kind: BlockEducation, Heading: l.Education, Entries: entries}
}

func nonEmpty(in []string) []string {
	out := in[:0:0]
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// siteName returns the registrable domain of u, e.g. "linkedin.com".
func siteName(u string) string {
	parsed, err := url.Parse(u)
	if err != nil || parsed.Hostname() == "" {
		return displayURL(u)
	}
	host := parsed.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld
	}
	return strings.TrimPrefix(host, "www.")
}

// displayURL strips the scheme, "www." and any trailing slash.
func displayURL(u string) string {
	s := strings.TrimSpace(u)
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	s = strings.TrimPrefix(s, "www.")
	return strings.TrimSuffix(s, "/")
}
