package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/baseplate-io/baseplate/pkg/paths"
)

func newLinkCommand() *cobra.Command {
	var (
		absolute bool
		noForce  bool
	)

	cmd := &cobra.Command{
		Use:   "link <src> <target>",
		Short: "Create a symlink at target pointing to src (relative by default)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, target := args[0], args[1]

			if !paths.Symlink(src, target, !noForce, !absolute) {
				return fmt.Errorf("create symlink %s -> %s", target, src)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n",
				color.GreenString("linked"), target, src)
			return nil
		},
	}

	cmd.Flags().BoolVar(&absolute, "absolute", false, "Store an absolute link instead of a relative one")
	cmd.Flags().BoolVar(&noForce, "no-force", false, "Fail instead of replacing an existing target")
	return cmd
}
