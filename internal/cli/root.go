// Package cli implements cvctl, the operator command line for rendering,
// publishing and fetching the CV outside the HTTP server.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iggarsaudev/career-hub/internal/bootstrap"
	"github.com/iggarsaudev/career-hub/internal/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "cvctl",
	Short: "Render, publish and fetch the portfolio CV",
	Long: `cvctl drives the CV pipeline from the command line using the same
configuration as the server: content source, CV store and Chrome settings
come from the environment or from the file given with --config.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "env file to load (default is ./.env when present)")
}

// services loads the configuration and builds the service graph.
func services(ctx context.Context) (svc *bootstrap.Services, err error) {
	var cfg config.Config
	if configFile != "" {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return svc, err
	}
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	svc, err = bootstrap.Build(ctx, cfg, bootstrap.NewLogger(level))
	if err != nil {
		err = errors.Wrap(err, "failed to initialise services")
		return svc, err
	}
	return svc, err
}

// writeOutput writes b to path, or to out when path is "-".
func writeOutput(out io.Writer, path string, b []byte) (err error) {
	if path == "-" {
		_, err = out.Write(b)
		return err
	}
	err = os.WriteFile(path, b, 0o644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write %s", path)
	}
	return err
}
