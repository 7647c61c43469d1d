package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dusk/internal/cli"
	"github.com/bnema/dusk/internal/cli/styles"
)

var doctorStrict bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Show which detectors answer and whether the store opens",
	Long: `Doctor lists every enabled ambient detector in priority order with its
availability and answer, the change monitors 'watch' would start, and the
state of the preference database.

Examples:
  dusk doctor
  dusk doctor --strict   # exit non-zero when nothing answers`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorStrict, "strict", false, "fail when no detector answers or the store is unavailable")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	report := buildDoctorReport(a)
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(a.Theme).Render(report))

	if doctorStrict && !report.OK() {
		return fmt.Errorf("doctor found problems")
	}
	return nil
}

func buildDoctorReport(a *cli.App) styles.DoctorReport {
	var report styles.DoctorReport

	for _, d := range a.Ambient.Detectors() {
		entry := styles.DoctorDetector{
			Name:      d.Name(),
			Priority:  d.Priority(),
			Available: d.Available(),
		}
		if entry.Available {
			entry.Dark, entry.Answered = d.Detect()
		}
		report.Detectors = append(report.Detectors, entry)
	}

	pref := a.Ambient.Resolve()
	report.Winner = pref.Source
	report.PrefersDark = pref.PrefersDark

	for _, m := range cli.MonitorsFor(a.Config) {
		report.Monitors = append(report.Monitors, m.Name())
	}

	report.Database = styles.DoctorDatabase{Path: a.DB.Path(), OK: true}
	if _, err := a.DB.DB(a.Ctx()); err != nil {
		report.Database.OK = false
		report.Database.Error = err.Error()
	}

	return report
}
