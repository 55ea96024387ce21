// Package commands implements the CLI commands for the voltdev tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/voltdev/internal/app"
	"go.trai.ch/voltdev/internal/build"
)

// DefaultConfigPath is the configuration file looked up in the project root.
const DefaultConfigPath = "voltdev.yaml"

// CLI represents the command line interface for voltdev.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
	onJSON  func(bool)
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "voltdev",
		Short:         "Build, smoke-test and format the Volt compiler",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", DefaultConfigPath, "Path to configuration file")
	rootCmd.PersistentFlags().String("root", "", "Project root (defaults to the working directory)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		jsonLogs, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		if c.onJSON != nil {
			c.onJSON(jsonLogs)
		}
		return nil
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newFmtCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// SetJSONHook registers fn to receive the --json flag before a command runs.
func (c *CLI) SetJSONHook(fn func(bool)) {
	c.onJSON = fn
}

func projectFlags(cmd *cobra.Command) (root, config string) {
	root, _ = cmd.Flags().GetString("root")
	config, _ = cmd.Flags().GetString("config")
	return root, config
}
