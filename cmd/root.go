package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/fastmath/internal/app"
	"github.com/abhisek/fastmath/internal/config"
	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "fastmath",
	Short: "Adaptive mental arithmetic drills",
	Long:  "fastmath — a terminal drill for mental arithmetic that adapts problem selection and difficulty to your performance.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FASTMATH_DB env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FASTMATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the store plus the persisted history and config.
func openStore(cmd *cobra.Command) (*store.Store, *history.Log, *config.Config, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	ctx := context.Background()
	records, err := st.LoadHistory(ctx)
	if err != nil {
		st.Close()
		return nil, nil, nil, fmt.Errorf("load history: %w", err)
	}
	cfg, err := st.LoadConfig(ctx)
	if err != nil {
		st.Close()
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	return st, history.NewLog(records), cfg, nil
}

// runApp opens the store, loads state, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, log, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(log, cfg, st)
}
