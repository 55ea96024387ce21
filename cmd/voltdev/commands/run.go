package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/voltdev/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [mode]",
		Short: "Configure and build the compiler, then compile the test program",
		Long: "Configure and build the compiler with CMake, then run it on the test program.\n" +
			"Mode \"msvc\" selects MSVC with the Visual Studio 17 generator; any other value,\n" +
			"or none, selects GCC with Ninja.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var mode string
			if len(args) > 0 {
				mode = args[0]
			}
			root, config := projectFlags(cmd)
			noClear, _ := cmd.Flags().GetBool("no-clear")
			strict, _ := cmd.Flags().GetBool("strict")
			platform, _ := cmd.Flags().GetString("platform")

			_, err := c.app.Run(cmd.Context(), app.RunOptions{
				Mode:       mode,
				Root:       root,
				ConfigPath: config,
				GOOS:       platform,
				NoClear:    noClear,
				Strict:     strict,
			})
			return err
		},
	}
	cmd.Flags().Bool("no-clear", false, "Do not clear the terminal before building")
	cmd.Flags().Bool("strict", false, "Fail when the compiler exits unsuccessfully")
	cmd.Flags().String("platform", "", "Simulate a host operating system (GOOS value)")
	_ = cmd.Flags().MarkHidden("platform")
	return cmd
}
