// Package commands builds the baseplate CLI command tree.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baseplate-io/baseplate/pkg/background"
	"github.com/baseplate-io/baseplate/pkg/config"
	"github.com/baseplate-io/baseplate/pkg/logging"
)

const cliExecutable = "baseplate"

// NewCommand constructs the top-level baseplate CLI command, wiring global
// flags, configuration loading, and logging setup.
func NewCommand() *cobra.Command {
	var configFile string
	manager := config.NewManager()

	cmd := &cobra.Command{
		Use:   cliExecutable,
		Short: "Assorted filesystem utilities and background-job execution",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := manager.Load(config.DefaultSources(configFile, cmd.Flags())...); err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if err := logging.Configure(manager.Get().Log.Level); err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// Drain any background work a command kicked off. A no-op when
			// the default executor was never constructed.
			background.ShutdownDefault(true, false)
		},
	}

	cmd.SilenceUsage = true

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	cmd.PersistentFlags().String("log-level", "error", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newHashCommand())
	cmd.AddCommand(newCopyCommand())
	cmd.AddCommand(newLinkCommand())
	cmd.AddCommand(newConfigCommand(manager))
	cmd.AddCommand(newVersionCommand())

	return cmd
}
