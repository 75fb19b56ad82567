package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/omegaup/internal/ui/style"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show what is installed under a prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")
			recipe, _ := cmd.Flags().GetString("recipe")
			jsonMode, _ := cmd.Flags().GetBool("json")

			receipt, err := c.app.Info(cmd.Context(), prefix, recipe)
			if err != nil {
				return err
			}

			if jsonMode {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(receipt)
			}
			printReceipt(cmd.OutOrStdout(), receipt)
			return nil
		},
	}
	addPrefixFlag(cmd)
	addRecipeFlag(cmd)
	return cmd
}

func printReceipt(w io.Writer, r *domain.InstallReceipt) {
	title := lipgloss.NewStyle().Bold(true).Foreground(style.Green)
	key := lipgloss.NewStyle().Foreground(style.Slate).Width(10)

	_, _ = fmt.Fprintln(w, title.Render(style.Check+" "+r.Name+" "+r.Version))
	rows := [][2]string{
		{"prefix", r.Prefix},
		{"strategy", r.Strategy},
		{"source", r.SourceURL},
		{"installed", r.InstalledAt.Format(time.RFC3339)},
		{"files", fmt.Sprint(len(r.Files))},
		{"run", r.RunID},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		_, _ = fmt.Fprintln(w, "  "+key.Render(row[0])+" "+row[1])
	}
}
