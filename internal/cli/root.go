// Package cli implements the utmconv command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tzneal/utm"
	"github.com/tzneal/utm/internal/config"
)

// app carries what the subcommands share once the root command has loaded
// the configuration.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log *logrus.Logger
}

// NewRootCmd builds the utmconv command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	root := &cobra.Command{
		Use:   "utmconv",
		Short: "Convert between WGS84 latitude/longitude and UTM.",
		Long: `utmconv converts single points between WGS84 geodetic coordinates
(decimal degrees) and Universal Transverse Mercator grid coordinates (meters).

Configuration can be changed with a configuration file (--config), with
command line flags, or with environment variables of the form UTMCONV_var,
e.g. UTMCONV_LOG_LEVEL=debug.

Negative coordinates must follow "--" so they are not read as flags:

  utmconv forward -- -31.953512 115.857048`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	if err := config.BindFlags(a.v, root.PersistentFlags()); err != nil {
		panic(err)
	}
	root.AddCommand(a.forwardCmd(), a.inverseCmd(), versionCmd())
	return root
}

// Execute runs utmconv and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(cfg, stderr)
	a.log.WithFields(logrus.Fields{
		"format":    cfg.Format,
		"precision": cfg.Precision,
		"strict":    cfg.Strict,
	}).Debug("configuration loaded")
	return nil
}

func newLogger(cfg *config.Config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(cfg.LogLevel)
	if cfg.LogFormat == config.FormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "utmconv v%s\n", utm.Version)
		},
		DisableAutoGenTag: true,
	}
}
