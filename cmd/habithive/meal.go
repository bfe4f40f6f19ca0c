package habithive

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/model"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/service"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Manage meal entries",
}

var (
	mealName     string
	mealCalories int
	mealType     string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			meals := service.NewMeals(store, nil)
			meal, err := meals.Save(service.SaveMealInput{
				Name:     mealName,
				Calories: mealCalories,
				Type:     model.MealType(mealType),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%d kcal, %s) as %s\n", meal.Name, meal.Calories, meal.Type, meal.ID)
			return nil
		})
	},
}

var mealListDate string

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateOrNow(mealListDate)
		if err != nil {
			return err
		}
		return withStore(func(store *storage.Store) error {
			meals := service.NewMeals(store, nil)
			entries := meals.ByDate(day)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meals logged")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tTYPE\tKCAL\tNAME")
			total := 0
			for _, meal := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", meal.ID, formatClock(meal.Time), meal.Type, meal.Calories, meal.Name)
				total += meal.Calories
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d kcal\n", total)
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a meal by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			service.NewMeals(store, nil).Delete(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealDeleteCmd)

	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Meal name")
	mealAddCmd.Flags().IntVar(&mealCalories, "calories", 0, "Calories")
	mealAddCmd.Flags().StringVar(&mealType, "type", "snack", "Meal type: breakfast|lunch|dinner|snack")
	_ = mealAddCmd.MarkFlagRequired("name")

	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "Date YYYY-MM-DD (default today)")
}
