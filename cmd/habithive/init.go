package habithive

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/app"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/service"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

var initDemo bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local data file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}
		backend, err := storage.Open(path)
		if err != nil {
			return err
		}
		store := storage.NewStore(backend, newLogger())
		defer store.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized habithive data at %s\n", path)
		if initDemo {
			if service.SeedDemoData(store, nil) {
				fmt.Fprintln(cmd.OutOrStdout(), "Seeded demo data")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Demo data skipped (data already present)")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initDemo, "demo", false, "Seed sample data when empty")
}
