package habithive

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/service"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, activity, and fasting at a glance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			o := service.Summarize(
				service.NewMeals(store, nil),
				service.NewFasting(store, nil),
				service.NewActivity(store, nil),
				service.NewSettings(store),
				nil,
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", o.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Intake: %d / %d kcal (%d remaining), %d meal(s)\n",
				o.CaloriesConsumed, o.CalorieGoal, o.CaloriesRemaining, o.MealCount)
			fmt.Fprintf(cmd.OutOrStdout(), "Activity: %d / %d min, %d steps, %d kcal burned, %d workout(s)\n",
				o.ActiveMinutes, o.TargetActiveMin, o.Steps, o.CaloriesBurned, o.WorkoutCount)
			if o.CurrentFast != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Fasting: %s elapsed, %s remaining (%.0f%%)\n",
					formatDuration(o.CurrentFast.Elapsed), formatDuration(o.CurrentFast.Remaining), o.CurrentFast.Progress*100)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Fasting: not running (target %dh)\n", o.FastingTargetHours)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fasting streak: %d day(s)\n", o.FastingStreakDays)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
