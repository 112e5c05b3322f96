// Package cli implements the moodreel command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/moodreel/internal/config"
	"github.com/ewilliams-labs/moodreel/internal/logging"
)

// NewRootCmd builds the moodreel command tree.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "moodreel",
		Short: "moodreel - turn a mood into a movie concept",
		Long:  "Describe how you feel and moodreel writes a short screenplay with a title, poster and soundtrack to match.",
		// usage is noise on runtime errors
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			level := cfg.Log.Level
			if verbose {
				level = "debug"
			}
			logging.InitWriter(cmd.ErrOrStderr(), level, cfg.Log.Pretty)

			cmd.SetContext(config.WithConfig(cmd.Context(), cfg))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newConfigCmd())
	return root
}
