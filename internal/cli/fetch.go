package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iggarsaudev/career-hub/internal/locale"
)

//nolint:gochecknoglobals // Cobra boilerplate
var fetchOut string

//nolint:gochecknoglobals // Cobra boilerplate
var siteLang string

//nolint:gochecknoglobals // Cobra boilerplate
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the currently published CV",
	Args:  cobra.NoArgs,
	RunE:  runFetch,
}

//nolint:gochecknoglobals // Cobra boilerplate
var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Print the public portfolio view as JSON",
	Args:  cobra.NoArgs,
	RunE:  runSite,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(fetchCmd, siteCmd)
	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "Output file, - for stdout (default CV_<Name>.pdf)")
	siteCmd.Flags().StringVar(&siteLang, "lang", "es", "Language (es|en)")
}

func runFetch(cmd *cobra.Command, _ []string) (err error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	svc, err := services(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	pub, err := svc.Generator.Retrieve(ctx)
	if err != nil {
		err = errors.Wrap(err, "failed to fetch published CV")
		return err
	}
	out := fetchOut
	if out == "" {
		out = pub.FileName
	}
	err = writeOutput(cmd.OutOrStdout(), out, pub.Data)
	if err == nil && out != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", out, len(pub.Data))
	}
	return err
}

func runSite(cmd *cobra.Command, _ []string) (err error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	svc, err := services(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	view, err := svc.Site.View(ctx, locale.ParseLang(siteLang))
	if err != nil {
		err = errors.Wrap(err, "failed to load site")
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}
