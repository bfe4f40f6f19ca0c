package habithive

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/model"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/service"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Manage daily activity",
}

var activityShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show today's activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			today := service.NewActivity(store, nil).Today()
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", today.Date.Format("2006-01-02"))
			fmt.Fprintf(cmd.OutOrStdout(), "Active minutes: %d\n", today.ActiveMinutes)
			fmt.Fprintf(cmd.OutOrStdout(), "Calories burned: %d\n", today.CaloriesBurned)
			fmt.Fprintf(cmd.OutOrStdout(), "Steps: %d\n", today.Steps)
			if len(today.Workouts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Workouts: none")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Workouts:")
			for _, w := range today.Workouts {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d min, %d kcal\n", w.Type, w.Duration, w.CaloriesBurned)
			}
			return nil
		})
	},
}

var (
	activityMinutes int
	activityBurned  int
	activitySteps   int
)

var activityLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Update today's totals (only the flags you set change)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			update := service.ActivityUpdate{}
			if cmd.Flags().Changed("active-minutes") {
				update.ActiveMinutes = &activityMinutes
			}
			if cmd.Flags().Changed("calories") {
				update.CaloriesBurned = &activityBurned
			}
			if cmd.Flags().Changed("steps") {
				update.Steps = &activitySteps
			}
			if update.ActiveMinutes == nil && update.CaloriesBurned == nil && update.Steps == nil {
				return fmt.Errorf("set at least one of --active-minutes, --calories, --steps")
			}
			day, err := service.NewActivity(store, nil).Save(update)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %d min, %d kcal, %d steps\n",
				day.Date.Format("2006-01-02"), day.ActiveMinutes, day.CaloriesBurned, day.Steps)
			return nil
		})
	},
}

var (
	workoutType     string
	workoutDuration int
	workoutCalories int
)

var activityWorkoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Append a workout to today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			day, err := service.NewActivity(store, nil).AddWorkout(model.Workout{
				Type:           workoutType,
				Duration:       workoutDuration,
				CaloriesBurned: workoutCalories,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added workout; %d workout(s) today\n", len(day.Workouts))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(activityCmd)
	activityCmd.AddCommand(activityShowCmd)
	activityCmd.AddCommand(activityLogCmd)
	activityCmd.AddCommand(activityWorkoutCmd)

	activityLogCmd.Flags().IntVar(&activityMinutes, "active-minutes", 0, "Active minutes today")
	activityLogCmd.Flags().IntVar(&activityBurned, "calories", 0, "Calories burned today")
	activityLogCmd.Flags().IntVar(&activitySteps, "steps", 0, "Steps today")

	activityWorkoutCmd.Flags().StringVar(&workoutType, "type", "", "Workout type")
	activityWorkoutCmd.Flags().IntVar(&workoutDuration, "duration", 0, "Duration in minutes")
	activityWorkoutCmd.Flags().IntVar(&workoutCalories, "calories", 0, "Calories burned")
	_ = activityWorkoutCmd.MarkFlagRequired("type")
	_ = activityWorkoutCmd.MarkFlagRequired("duration")
}
