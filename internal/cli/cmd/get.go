package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dusk/internal/cli"
	"github.com/bnema/dusk/internal/cli/styles"
	"github.com/bnema/dusk/internal/domain/entity"
)

var jsonOutput bool

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the effective color scheme",
	Long: `Resolve the effective color scheme and print it with its source.

The source is "stored" when an explicit choice exists, otherwise the name
of the detector that answered, or "fallback" when none did. Resolving also
refreshes the stylesheet and state outputs.

Examples:
  dusk get
  dusk get --json`,
	Args: cobra.NoArgs,
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&jsonOutput, "json", false, "print as JSON")
}

// schemeReport is the JSON form of `get` and `toggle`.
type schemeReport struct {
	Scheme     string `json:"scheme"`
	Source     string `json:"source"`
	Explicit   bool   `json:"explicit"`
	ThemeColor string `json:"theme_color"`
	ToggleIcon string `json:"toggle_icon"`
}

func newSchemeReport(state entity.PreferenceState, source string) schemeReport {
	return schemeReport{
		Scheme:     state.Scheme.String(),
		Source:     source,
		Explicit:   state.Explicit,
		ThemeColor: state.Scheme.ThemeColor(),
		ToggleIcon: state.Scheme.ToggleIcon(),
	}
}

func runGet(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	controller := a.NewController()
	defer controller.Close()
	state := controller.Initialize(a.Ctx())

	return printState(cmd, a, state)
}

func printState(cmd *cobra.Command, a *cli.App, state entity.PreferenceState) error {
	source := a.SourceOf(state)
	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newSchemeReport(state, source)); err != nil {
			return fmt.Errorf("encode state: %w", err)
		}
		return nil
	}

	_, err := fmt.Fprintln(out, styles.NewStatusRenderer(a.Theme).Render(state, source))
	return err
}
