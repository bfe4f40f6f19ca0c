package habithive

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/service"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

var fastCmd = &cobra.Command{
	Use:   "fast",
	Short: "Manage fasting sessions",
}

var fastTargetHours float64

var fastStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a fast (ends any running one)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			fasting := service.NewFasting(store, nil)
			target := fastTargetHours
			if !cmd.Flags().Changed("target-hours") {
				target = float64(service.NewSettings(store).Get().FastingSchedule.TargetHours)
			}
			session, err := fasting.Start(target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fast %s started at %s, target %.1fh\n", session.ID, formatClock(session.StartTime), session.TargetHours)
			return nil
		})
	},
}

var fastEndID string

var fastEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the running fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			fasting := service.NewFasting(store, nil)
			id := fastEndID
			if id == "" {
				current := fasting.Current()
				if current == nil {
					return fmt.Errorf("no fast is running")
				}
				id = current.ID
			}
			session := fasting.End(id)
			if session == nil {
				return fmt.Errorf("no fasting session with id %q", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fast %s ended after %s\n", session.ID, formatDuration(session.Elapsed(*session.EndTime)))
			return nil
		})
	},
}

var fastStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			fasting := service.NewFasting(store, nil)
			current := fasting.Current()
			if current == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No fast is running")
				return nil
			}
			now := timeNow()
			fmt.Fprintf(cmd.OutOrStdout(), "Fasting since %s (target %.1fh)\n", formatClock(current.StartTime), current.TargetHours)
			fmt.Fprintf(cmd.OutOrStdout(), "Elapsed: %s\n", formatDuration(current.Elapsed(now)))
			fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %s\n", formatDuration(current.Remaining(now)))
			fmt.Fprintf(cmd.OutOrStdout(), "Progress: %.0f%%\n", current.Progress(now)*100)
			return nil
		})
	},
}

var fastStreakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the completed-fast streak in days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			streak := service.NewFasting(store, nil).Streak()
			fmt.Fprintf(cmd.OutOrStdout(), "Streak: %d day(s)\n", streak)
			return nil
		})
	},
}

var fastListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all fasting sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			sessions := service.NewFasting(store, nil).All()
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No fasting sessions")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTART\tEND\tTARGET\tSTATE")
			for _, s := range sessions {
				end := "-"
				state := "open"
				if s.Completed {
					state = "completed"
					if s.EndTime != nil {
						end = formatClock(*s.EndTime)
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%.1fh\t%s\n", s.ID, formatClock(s.StartTime), end, s.TargetHours, state)
			}
			return w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(fastCmd)
	fastCmd.AddCommand(fastStartCmd)
	fastCmd.AddCommand(fastEndCmd)
	fastCmd.AddCommand(fastStatusCmd)
	fastCmd.AddCommand(fastStreakCmd)
	fastCmd.AddCommand(fastListCmd)

	fastStartCmd.Flags().Float64Var(&fastTargetHours, "target-hours", 16, "Target fast length in hours (default from settings)")
	fastEndCmd.Flags().StringVar(&fastEndID, "id", "", "Session id (default the running fast)")
}
