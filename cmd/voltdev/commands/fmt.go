package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/voltdev/internal/app"
)

func (c *CLI) newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [path]",
		Short: "Format C and C++ sources with clang-format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			root, config := projectFlags(cmd)

			_, err := c.app.Format(cmd.Context(), app.FormatOptions{
				Root:       root,
				ConfigPath: config,
				Path:       path,
			})
			return err
		},
	}
}
