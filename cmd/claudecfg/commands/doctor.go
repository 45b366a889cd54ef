package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/doctor"
	"github.com/thoreinstein/claudecfg/internal/errors"
)

var doctorJSON bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration health",
	Long: `Run diagnostic checks over the claudecfg environment.

Checks that the settings file parses, both configuration layers are
valid JSON and pass validation, and the backup directory is usable.
Exits non-zero when any check reports an error.`,
	Example: `  # Run all checks
  claudecfg doctor

  # Machine-readable report
  claudecfg doctor --json

  See Also: claudecfg init, claudecfg backup list`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	return runDoctorWithWriter(cmd, args, os.Stdout)
}

func runDoctorWithWriter(_ *cobra.Command, _ []string, w io.Writer) error {
	r := doctor.NewRunner()
	r.AddCheck(doctor.NewSettingsCheck())
	r.AddCheck(doctor.NewGlobalConfigCheck())
	r.AddCheck(doctor.NewProjectConfigCheck())
	r.AddCheck(doctor.NewBackupDirCheck(settingsBackupDir()))

	report := r.Run()

	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		outputDoctorText(w, report)
	}

	if report.HasErrors() {
		return errors.NewUserError(
			errors.Newf("%d check(s) failed", report.Summary.Errors),
			"see the report above for fixes")
	}
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.Report) {
	for _, r := range report.Results {
		var marker string
		switch r.Status {
		case doctor.SeverityPass:
			marker = colorGreen + "✓" + colorReset
		case doctor.SeverityInfo:
			marker = colorCyan + "i" + colorReset
		case doctor.SeverityWarning:
			marker = colorYellow + "!" + colorReset
		case doctor.SeverityError:
			marker = colorRed + "✗" + colorReset
		}

		fmt.Fprintf(w, "%s %s: %s\n", marker, r.Name, r.Message)
		if r.FixHint != "" {
			fmt.Fprintf(w, "  %s%s%s\n", colorGray, r.FixHint, colorReset)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d passed, %d info, %d warning(s), %d error(s)\n",
		report.Summary.Passed, report.Summary.Info,
		report.Summary.Warnings, report.Summary.Errors)
}
