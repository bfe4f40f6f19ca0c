package habithive

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/service"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the data file's slots for corruption",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			report, err := service.RunDoctor(store, doctorFix)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLOT\tSTATE\tRECORDS")
			for _, check := range report.Checks {
				state := "ok"
				switch {
				case !check.Present:
					state = "empty"
				case check.Fixed:
					state = "reset"
				case !check.Parseable:
					state = "corrupt"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\n", check.Slot, state, check.Records)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if doctorFix {
				// Re-check so the exit status reflects the final state.
				report, err = service.RunDoctor(store, false)
				if err != nil {
					return err
				}
			}
			if report.Corrupt > 0 {
				return fmt.Errorf("doctor found %d corrupt slot(s)", report.Corrupt)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Reset corrupt slots to empty")
}
