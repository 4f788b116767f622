package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print performance statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, log, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if log.Len() == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-15s %9s %9s %7s %8s %8s %8s %8s\n",
			"operation", "attempts", "accuracy", "level", "avg", "median", "mode", "stddev")
		for _, r := range log.Reports() {
			fmt.Printf("%-15s %9d %8.0f%% %7d %7.2fs %7.2fs %7.2fs %7.2fs\n",
				r.Op.Name(), r.Attempts, r.Accuracy*100, cfg.Difficulty(r.Op),
				r.AvgTime, r.MedianTime, r.ModeTime, r.StdDevTime)
		}

		recent := log.Recent(10)
		fmt.Printf("\nlast %d attempts: %.0f%% accuracy, %.1fs average\n",
			recent.Attempts, recent.Accuracy*100, recent.AvgTime)
		fmt.Printf("longest streak: %d\n", log.LongestStreak())
		return nil
	},
}
