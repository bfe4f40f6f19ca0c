package habithive

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/model"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/service"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage goals and the fasting schedule",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			cfg := service.NewSettings(store).Get()
			fmt.Fprintf(cmd.OutOrStdout(), "Daily calorie goal: %d kcal\n", cfg.DailyCalorieGoal)
			fmt.Fprintf(cmd.OutOrStdout(), "Target active minutes: %d\n", cfg.TargetActiveMinutes)
			fmt.Fprintf(cmd.OutOrStdout(), "Fasting target: %dh\n", cfg.FastingSchedule.TargetHours)
			if cfg.FastingSchedule.PreferredStartTime != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Preferred fast start: %s\n", cfg.FastingSchedule.PreferredStartTime)
			}
			return nil
		})
	},
}

var (
	setCalorieGoal   int
	setActiveMinutes int
	setFastingHours  int
	setFastingStart  string
)

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			settings := service.NewSettings(store)
			update := service.SettingsUpdate{}
			if cmd.Flags().Changed("calorie-goal") {
				update.DailyCalorieGoal = &setCalorieGoal
			}
			if cmd.Flags().Changed("active-minutes") {
				update.TargetActiveMinutes = &setActiveMinutes
			}
			if cmd.Flags().Changed("fasting-hours") || cmd.Flags().Changed("fasting-start") {
				// The schedule merges wholesale, so rebuild it from the
				// stored record plus whichever flags were set.
				schedule := settings.Get().FastingSchedule
				if cmd.Flags().Changed("fasting-hours") {
					schedule.TargetHours = setFastingHours
				}
				if cmd.Flags().Changed("fasting-start") {
					schedule.PreferredStartTime = setFastingStart
				}
				update.FastingSchedule = &model.FastingSchedule{
					TargetHours:        schedule.TargetHours,
					PreferredStartTime: schedule.PreferredStartTime,
				}
			}
			if update.DailyCalorieGoal == nil && update.TargetActiveMinutes == nil && update.FastingSchedule == nil {
				return fmt.Errorf("set at least one flag")
			}
			cfg, err := settings.Save(update)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings updated: %d kcal, %d min, fast %dh\n",
				cfg.DailyCalorieGoal, cfg.TargetActiveMinutes, cfg.FastingSchedule.TargetHours)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)

	settingsSetCmd.Flags().IntVar(&setCalorieGoal, "calorie-goal", 0, "Daily calorie goal")
	settingsSetCmd.Flags().IntVar(&setActiveMinutes, "active-minutes", 0, "Target active minutes per day")
	settingsSetCmd.Flags().IntVar(&setFastingHours, "fasting-hours", 0, "Fasting target hours")
	settingsSetCmd.Flags().StringVar(&setFastingStart, "fasting-start", "", "Preferred fast start time HH:MM")
}
