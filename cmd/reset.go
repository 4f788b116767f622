package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all attempt history and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Println("This deletes all attempt history and settings.")
			fmt.Println("Run again with --yes to confirm.")
			return nil
		}

		st, _, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Reset(context.Background()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Println("All data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
}
