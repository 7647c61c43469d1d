package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dusk/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, repository URL, and contributors.`,
	Args:  cobra.NoArgs,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(a.Theme).Render(a.BuildInfo))
	return nil
}
