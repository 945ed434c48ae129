package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/baseplate-io/baseplate/pkg/fileutil"
)

func newHashCommand() *cobra.Command {
	var useSHA1 bool

	cmd := &cobra.Command{
		Use:   "hash <file>",
		Short: "Compute a file checksum (SHA-256 by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var (
				digest string
				err    error
				alg    = "sha256"
			)
			if useSHA1 {
				digest, err = fileutil.HashSHA1(path)
				alg = "sha1"
			} else {
				digest, err = fileutil.ChecksumSHA256(path)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
				color.GreenString(digest), alg, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useSHA1, "sha1", false, "Use SHA-1 instead of SHA-256")
	return cmd
}
