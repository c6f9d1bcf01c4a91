// Package document holds the renderer-agnostic CV model and the assembler
// that builds it from content records.
//
// A Document is a single A4 page template: a sidebar region and a main
// region, each a list of typed blocks. Blocks carry nodes (text, links and
// images) or entries, where an entry is a group of nodes that must never be
// split across a page break.
package document

import "github.com/iggarsaudev/career-hub/internal/locale"

type (
	RegionKind string
	BlockKind  string
	NodeKind   string
	Style      string
)

const (
	RegionSidebar RegionKind = "sidebar"
	RegionMain    RegionKind = "main"
)

const (
	BlockAvatar     BlockKind = "avatar"
	BlockContact    BlockKind = "contact"
	BlockSocial     BlockKind = "social"
	BlockSkills     BlockKind = "skills"
	BlockLanguages  BlockKind = "languages"
	BlockHeader     BlockKind = "header"
	BlockProfile    BlockKind = "profile"
	BlockExperience BlockKind = "experience"
	BlockEducation  BlockKind = "education"
)

const (
	NodeText  NodeKind = "text"
	NodeLink  NodeKind = "link"
	NodeImage NodeKind = "image"
)

const (
	StyleName       Style = "name"
	StyleTitle      Style = "title"
	StyleBody       Style = "body"
	StyleField      Style = "field"
	StyleLink       Style = "link"
	StyleCaption    Style = "caption"
	StyleBadge      Style = "badge"
	StyleListItem   Style = "list-item"
	StyleAvatar     Style = "avatar"
	StyleQR         Style = "qr"
	StyleEntryTitle Style = "entry-title"
	StyleEntryDate  Style = "entry-date"
)

// Sidebar layout shared by every page.
const (
	SidebarColor        = "#1B3864"
	SidebarWidthPercent = 28
)

type PageSize struct {
	Name     string
	WidthMM  float64
	HeightMM float64
}

var A4 = PageSize{Name: "A4", WidthMM: 210, HeightMM: 297}

// Background is a decorative band repeated on every printed page.
type Background struct {
	Region       RegionKind
	Color        string
	WidthPercent int
}

type Meta struct {
	Title    string
	Author   string
	Lang     locale.Lang
	FileName string
}

type Document struct {
	Meta Meta
	Page Page
}

type Page struct {
	Size       PageSize
	Background Background
	Sidebar    Region
	Main       Region
}

type Region struct {
	Kind   RegionKind
	Blocks []Block
}

type Block struct {
	Kind    BlockKind
	Heading string
	Nodes   []Node
	Entries []Entry
	// KeepTogether asks the renderer not to break the block across pages.
	KeepTogether bool
}

// Entry is one experience or education item. Entries are never split.
type Entry struct {
	ID    int
	Nodes []Node
}

type Node struct {
	Kind  NodeKind
	Style Style
	// Label prefixes a text node ("Teléfono") or names a link's site.
	Label string
	Text  string
	Href  string
	Image *Image
}

// Image is either a reference (URL) or raw bytes with their MIME type.
type Image struct {
	URL  string
	Data []byte
	MIME string
}

// Block returns the first block of the given kind in either region.
func (d *Document) Block(kind BlockKind) (*Block, bool) {
	for _, r := range []*Region{&d.Page.Sidebar, &d.Page.Main} {
		for i := range r.Blocks {
			if r.Blocks[i].Kind == kind {
				return &r.Blocks[i], true
			}
		}
	}
	return nil, false
}

// WithoutAvatar returns a copy of d with the avatar block removed.
func (d *Document) WithoutAvatar() *Document {
	cp := *d
	blocks := make([]Block, 0, len(d.Page.Sidebar.Blocks))
	for _, b := range d.Page.Sidebar.Blocks {
		if b.Kind != BlockAvatar {
			blocks = append(blocks, b)
		}
	}
	cp.Page.Sidebar.Blocks = blocks
	return &cp
}

// Text returns the text of the first node with the given style.
func (e Entry) Text(style Style) string {
	for _, n := range e.Nodes {
		if n.Style == style {
			return n.Text
		}
	}
	return ""
}

// Text returns the text of the first node with the given style.
func (b Block) Text(style Style) string {
	for _, n := range b.Nodes {
		if n.Style == style {
			return n.Text
		}
	}
	return ""
}
