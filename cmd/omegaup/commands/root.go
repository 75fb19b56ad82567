// Package commands implements the CLI commands for omegaup.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/omegaup/internal/app"
	"go.trai.ch/omegaup/internal/build"
	"go.trai.ch/omegaup/internal/core/domain"
)

// CLI represents the command line interface for omegaup.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	onJSON  func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Install(ctx context.Context, opts app.InstallOptions) (*domain.InstallReport, error)
	PostInstall(ctx context.Context, prefix string) (domain.ConfigOutcome, error)
	Test(ctx context.Context, prefix, recipe string) (string, error)
	Uninstall(ctx context.Context, prefix, recipe string) ([]string, error)
	Info(ctx context.Context, prefix, recipe string) (*domain.InstallReceipt, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "omegaup",
		Short:         "Build and install the OMEGA compiler toolchain",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		jsonMode, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		if c.onJSON != nil {
			c.onJSON(jsonMode)
		}
		return nil
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newPostInstallCmd())
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newUninstallCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetJSONHook registers fn to receive the value of the --json flag before
// any command runs.
func (c *CLI) SetJSONHook(fn func(bool)) {
	c.onJSON = fn
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func defaultPrefix() string {
	if p := os.Getenv(domain.PrefixEnvVar); p != "" {
		return p
	}
	return domain.DefaultPrefix
}

func addPrefixFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("prefix", "p", defaultPrefix(), "Install root (defaults to $"+domain.PrefixEnvVar+" or "+domain.DefaultPrefix+")")
}

func addRecipeFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("recipe", "r", "", "Recipe file (defaults to the built-in recipe)")
}
