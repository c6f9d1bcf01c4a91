package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iggarsaudev/career-hub/internal/domain"
	"github.com/iggarsaudev/career-hub/internal/locale"
)

//nolint:gochecknoglobals // Cobra boilerplate
var publishFile string

//nolint:gochecknoglobals // Cobra boilerplate
var publishLang string

//nolint:gochecknoglobals // Cobra boilerplate
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the CV served to visitors",
	Long: `Publish a PDF as the public CV. Without --file the CV is rendered
from the current content first.

Example:
  cvctl publish --file CV_Ana_Ruiz.pdf
  cvctl publish --lang es`,
	Args: cobra.NoArgs,
	RunE: runPublish,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().StringVar(&publishFile, "file", "", "PDF to publish (default: render it)")
	publishCmd.Flags().StringVar(&publishLang, "lang", "es", "CV language when rendering (es|en)")
}

func runPublish(cmd *cobra.Command, _ []string) (err error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	svc, err := services(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	var ack domain.PublishAck
	if publishFile != "" {
		pdf, readErr := os.ReadFile(publishFile)
		if readErr != nil {
			err = errors.Wrapf(readErr, "failed to read %s", publishFile)
			return err
		}
		ack, err = svc.Generator.Publish(ctx, pdf)
	} else {
		ack, err = svc.Generator.GenerateAndPublish(ctx, locale.ParseLang(publishLang))
	}
	if err != nil {
		err = errors.Wrap(err, "failed to publish CV")
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "published %s (%d bytes) at %s\n", ack.Key, ack.Size, ack.PublishedAt.Format(time.RFC3339))
	return err
}
