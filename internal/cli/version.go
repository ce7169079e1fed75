package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fprintln(cmd.OutOrStdout(), name, a.opts.Version, runtime.GOOS+"/"+runtime.GOARCH)
		},
	}
}
