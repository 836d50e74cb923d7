package commands

import "github.com/spf13/cobra"

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <destination_dir>",
		Short: "Check a staged bundle against its manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Verify(cmd.Context(), args[0])
		},
	}
}
