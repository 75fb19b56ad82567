package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/omegaup/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Build a release from source and install it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, _ := cmd.Flags().GetString("source")
			prefix, _ := cmd.Flags().GetString("prefix")
			recipe, _ := cmd.Flags().GetString("recipe")
			skipVerify, _ := cmd.Flags().GetBool("skip-verify")

			_, err := c.app.Install(cmd.Context(), app.InstallOptions{
				Source:     source,
				Prefix:     prefix,
				Recipe:     recipe,
				SkipVerify: skipVerify,
			})
			return err
		},
	}
	cmd.Flags().StringP("source", "s", ".", "Unpacked release source tree")
	addPrefixFlag(cmd)
	addRecipeFlag(cmd)
	cmd.Flags().Bool("skip-verify", false, "Skip the post-install smoke test")
	return cmd
}

func (c *CLI) newPostInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post-install",
		Short: "Create the state directory and the default config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")

			outcome, err := c.app.PostInstall(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "config %s\n", outcome)
			return nil
		},
	}
	addPrefixFlag(cmd)
	return cmd
}

func (c *CLI) newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Smoke-test an existing installation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")
			recipe, _ := cmd.Flags().GetString("recipe")

			version, err := c.app.Test(cmd.Context(), prefix, recipe)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
	addPrefixFlag(cmd)
	addRecipeFlag(cmd)
	return cmd
}

func (c *CLI) newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove an installation, keeping its config and state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")
			recipe, _ := cmd.Flags().GetString("recipe")

			removed, err := c.app.Uninstall(cmd.Context(), prefix, recipe)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d files\n", len(removed))
			return nil
		},
	}
	addPrefixFlag(cmd)
	addRecipeFlag(cmd)
	return cmd
}
