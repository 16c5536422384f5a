package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newSDKsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sdks",
		Short: "Print the SDKs the toolchain supports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			set := c.app.SDKs(cmd.Context())
			out := cmd.OutOrStdout()
			for _, name := range set.Names() {
				_, _ = fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
