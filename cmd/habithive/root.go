package habithive

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "habithive",
	Short: "habithive tracks meals, fasting, and activity from your terminal",
	Long:  "habithive is a local-first personal wellness tracker covering meals, fasting sessions with streaks, daily activity, and goals.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to data file")
}
