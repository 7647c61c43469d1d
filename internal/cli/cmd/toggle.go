package cmd

import (
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between light and dark and remember the choice",
	Long: `Flip the effective color scheme and store it as an explicit choice.

Once a choice is stored the desktop's preference is no longer followed.
A running 'dusk watch' picks the choice up on SIGHUP or on its next
ambient change; 'pkill -USR1 -x dusk' toggles inside the daemon instead.`,
	Args: cobra.NoArgs,
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	toggleCmd.Flags().BoolVar(&jsonOutput, "json", false, "print as JSON")
}

func runToggle(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	controller := a.NewController()
	defer controller.Close()
	controller.Initialize(a.Ctx())
	controller.Toggle(a.Ctx())

	return printState(cmd, a, controller.State())
}
