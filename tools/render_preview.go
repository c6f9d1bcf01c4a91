// render_preview writes the CV as HTML from a JSON snapshot file, without
// Chrome. Usage: go run ./tools [snapshot.json] [es|en]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/iggarsaudev/career-hub/internal/document"
	"github.com/iggarsaudev/career-hub/internal/locale"
	"github.com/iggarsaudev/career-hub/internal/model"
	"github.com/iggarsaudev/career-hub/internal/qr"
	"github.com/iggarsaudev/career-hub/pkg/infrastructure"
)

func main() {
	in := "snapshot.json"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	lang := locale.Default
	if len(os.Args) > 2 {
		lang = locale.ParseLang(os.Args[2])
	}

	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read snapshot: %v\n", err)
		os.Exit(2)
	}
	snap, err := model.DecodeSnapshot(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode snapshot: %v\n", err)
		os.Exit(2)
	}
	if snap.Profile == nil {
		fmt.Fprintln(os.Stderr, "snapshot has no profile")
		os.Exit(2)
	}

	code, err := qr.NewGenerator("").Encode(context.Background(), snap.Profile.PortfolioURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qr: %v\n", err)
		os.Exit(2)
	}
	doc, err := document.Assemble(document.Input{
		Profile:    snap.Profile,
		Experience: snap.Experience,
		Education:  snap.Education,
		Skills:     snap.Skills,
		Languages:  snap.Languages,
		QR:         code,
		Lang:       lang,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "assemble: %v\n", err)
		os.Exit(2)
	}

	html, err := infrastructure.MustHTMLRenderer().Render(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	out := "preview_" + string(lang) + ".html"
	if err := os.WriteFile(out, html, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", out)
}
