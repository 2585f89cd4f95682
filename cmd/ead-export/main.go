// Command ead-export writes EAD finding aids for archival records.
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hutchesonn/camh-ead-exporter/config"
	"github.com/hutchesonn/camh-ead-exporter/internal"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg config.AppConfig
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "ead-export",
		Short: "Export archival descriptions as EAD 2002 XML",
		Long: `ead-export turns an archival resource record and its components into one
EAD 2002 finding aid.

Examples:
  ead-export export --record testdata/resource.yml --out collection.xml
  ead-export export --snapshot cache/ms42.gob --numbered-c-tags
  ead-export check collection.xml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			var err error
			if path != "" {
				a.cfg, err = config.Load(path)
			} else if err = config.LoadAppConfig(); err == nil {
				a.cfg = config.Config
			} else if errors.Is(err, fs.ErrNotExist) {
				// no config file: run on defaults
				a.cfg, err = config.Parse(nil)
			}
			if err != nil {
				return err
			}

			level, _ := cmd.Flags().GetString("log-level")
			if level == "" {
				level = a.cfg.Logging.Level
			}
			jsonLogs, _ := cmd.Flags().GetBool("json-logs")
			a.log, err = internal.NewLogger(level, jsonLogs)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "Configuration file (default: ./config.yml when present)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	root.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	root.AddCommand(newExportCmd(a))
	root.AddCommand(newCheckCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
