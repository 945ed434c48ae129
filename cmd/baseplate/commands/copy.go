package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/baseplate-io/baseplate/pkg/fileutil"
)

func newCopyCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "copy <src> <dst>",
		Short: "Copy a file using platform-native tooling when available",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]

			if err := fileutil.NativeCopy(src, dst, strict); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n",
				color.GreenString("copied"), src, dst)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false,
		"Fail when the native copy tool errors instead of falling back")
	return cmd
}
