package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/pm/internal/config"
	"github.com/thoreinstein/pm/internal/doctor"
	"github.com/thoreinstein/pm/internal/errors"
)

var (
	doctorJSON    bool
	doctorVerbose bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "all", false,
		"show passed checks too")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose settings and preferences",
	Long: `Run diagnostic checks on the settings file, saved projects and
preferences.

Checks that the settings file parses, that every project directory still
exists and that every editor command can be found in PATH.

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Args:    cobra.NoArgs,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	if doctorJSON && doctorVerbose {
		return errors.NewUserError(errors.New("flags --json and --all are mutually exclusive"), "")
	}
	return nil
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	store, err := settingsStore()
	if err != nil {
		return err
	}

	settingsCheck := doctor.NewSettingsFileCheck(store.Path())
	report := doctor.Run(
		doctor.NewConfigCheck(config.File(), configLoadErr),
		settingsCheck,
		doctor.NewProjectPathsCheck(settingsCheck),
		doctor.NewEditorCommandsCheck(settingsCheck, nil),
	)

	w := cmd.OutOrStdout()
	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
	} else {
		outputDoctorText(w, report, doctorVerbose)
	}

	switch report.Worst() {
	case doctor.SeverityError:
		return errors.NewExitError(nil, errors.ExitSystem)
	case doctor.SeverityWarning:
		return errors.NewExitError(nil, errors.ExitUser)
	}
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.Report, showAll bool) {
	for _, result := range report.Results {
		if !showAll && result.Status != doctor.SeverityError && result.Status != doctor.SeverityWarning {
			continue
		}

		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)
		if result.FixHint != "" && result.Status >= doctor.SeverityWarning {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
