package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iggarsaudev/career-hub/internal/locale"
	"github.com/iggarsaudev/career-hub/pkg/infrastructure"
)

//nolint:gochecknoglobals // Cobra boilerplate
var renderLang string

//nolint:gochecknoglobals // Cobra boilerplate
var renderOut string

//nolint:gochecknoglobals // Cobra boilerplate
var renderHTML bool

//nolint:gochecknoglobals // Cobra boilerplate
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the CV to a local file without publishing it",
	Long: `Render the CV from the configured content source.

Example:
  cvctl render --lang en --out cv_en.pdf
  cvctl render --html --out preview.html`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderLang, "lang", "es", "CV language (es|en)")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "Output file, - for stdout (default CV_<Name>.pdf)")
	renderCmd.Flags().BoolVar(&renderHTML, "html", false, "Write the HTML layout instead of a PDF (no Chrome needed)")
}

func runRender(cmd *cobra.Command, _ []string) (err error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	svc, err := services(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	lang := locale.ParseLang(renderLang)
	if renderHTML {
		doc, buildErr := svc.Generator.Build(ctx, lang)
		if buildErr != nil {
			err = errors.Wrap(buildErr, "failed to build CV")
			return err
		}
		html, renderErr := infrastructure.MustHTMLRenderer().Render(doc)
		if renderErr != nil {
			err = errors.Wrap(renderErr, "failed to render HTML")
			return err
		}
		out := renderOut
		if out == "" {
			out = "preview_" + string(lang) + ".html"
		}
		return writeOutput(cmd.OutOrStdout(), out, html)
	}

	rendered, err := svc.Generator.Generate(ctx, lang)
	if err != nil {
		err = errors.Wrap(err, "failed to generate CV")
		return err
	}
	out := renderOut
	if out == "" {
		out = rendered.FileName
	}
	err = writeOutput(cmd.OutOrStdout(), out, rendered.Data)
	if err == nil && out != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", out, len(rendered.Data))
	}
	return err
}
