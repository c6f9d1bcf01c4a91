package infrastructure

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/document"
)

//go:embed templates/cv.html.tmpl templates/cv.css
var templatesFS embed.FS

// HTMLRenderer lays a document out as a self-contained print page: CSS is
// inlined and raw images are embedded as data URIs, so the page needs no
// file or network access besides referenced image URLs.
type HTMLRenderer struct {
	tpl *template.Template
	css template.CSS
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tpl, err := template.ParseFS(templatesFS, "templates/cv.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse cv template: %w", err)
	}
	css, err := templatesFS.ReadFile("templates/cv.css")
	if err != nil {
		return nil, fmt.Errorf("read cv stylesheet: %w", err)
	}
	return &HTMLRenderer{tpl: tpl, css: template.CSS(css)}, nil
}

// MustHTMLRenderer panics if the embedded template is broken.
func MustHTMLRenderer() *HTMLRenderer {
	r, err := NewHTMLRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

type pageView struct {
	Lang         string
	Title        string
	Author       string
	CSS          template.CSS
	SidebarWidth template.CSS
	SidebarColor template.CSS
	Sidebar      []blockView
	Main         []blockView
}

type blockView struct {
	Kind         string
	Heading      string
	KeepTogether bool
	Nodes        []nodeView
	Entries      []entryView
}

type entryView struct {
	ID    int
	Nodes []nodeView
}

type nodeView struct {
	Kind  string
	Style string
	Label string
	Text  string
	Href  string
	Src   any
}

// Render returns the HTML page for doc. Identical documents yield identical
// bytes.
func (r *HTMLRenderer) Render(doc *document.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", common.ErrRenderFailure)
	}
	bg := doc.Page.Background
	view := pageView{
		Lang:         string(doc.Meta.Lang),
		Title:        doc.Meta.Title,
		Author:       doc.Meta.Author,
		CSS:          r.css,
		SidebarWidth: template.CSS(fmt.Sprintf("%d%%", bg.WidthPercent)),
		SidebarColor: template.CSS(bg.Color),
	}
	var err error
	if view.Sidebar, err = blocksView(doc.Page.Sidebar.Blocks); err != nil {
		return nil, err
	}
	if view.Main, err = blocksView(doc.Page.Main.Blocks); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, "cv.html.tmpl", view); err != nil {
		return nil, fmt.Errorf("%w: execute template: %v", common.ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

func blocksView(blocks []document.Block) ([]blockView, error) {
	out := make([]blockView, 0, len(blocks))
	for _, b := range blocks {
		bv := blockView{Kind: string(b.Kind), Heading: b.Heading, KeepTogether: b.KeepTogether}
		nodes, err := nodesView(b.Nodes)
		if err != nil {
			return nil, err
		}
		bv.Nodes = nodes
		for _, e := range b.Entries {
			en, err := nodesView(e.Nodes)
			if err != nil {
				return nil, err
			}
			bv.Entries = append(bv.Entries, entryView{ID: e.ID, Nodes: en})
		}
		out = append(out, bv)
	}
	return out, nil
}

func nodesView(nodes []document.Node) ([]nodeView, error) {
	out := make([]nodeView, 0, len(nodes))
	for _, n := range nodes {
		nv := nodeView{Kind: string(n.Kind), Style: string(n.Style), Label: n.Label, Text: n.Text, Href: n.Href}
		if n.Kind == document.NodeText && n.Style == document.StyleBadge {
			nv.Kind = "badge"
		}
		if n.Kind == document.NodeImage {
			src, err := imageSource(n.Image)
			if err != nil {
				return nil, err
			}
			nv.Src = src
		}
		out = append(out, nv)
	}
	return out, nil
}

// imageSource returns the src attribute for img. Raw bytes are checked to be
// a decodable raster image before being embedded.
func imageSource(img *document.Image) (any, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: image node without image", common.ErrRenderFailure)
	}
	if len(img.Data) == 0 {
		if strings.TrimSpace(img.URL) == "" {
			return nil, fmt.Errorf("%w: image has neither data nor url", common.ErrRenderFailure)
		}
		return img.URL, nil
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: malformed image data: %v", common.ErrRenderFailure, err)
	}
	mime := img.MIME
	if mime == "" {
		mime = "image/" + format
	}
	return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)), nil
}
