package cmd

import (
	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathdrill",
	Short: "Primary school math test in the terminal",
	Long:  "Mathdrill is a terminal arithmetic test for primary school pupils: ten questions per test, ten points each, with a score history and a leaderboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides MATHDRILL_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite attempt log (overrides MATHDRILL_DB env var)")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the configuration using the --config flag
// (highest priority), then MATHDRILL_CONFIG, then the default path.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// resolveDBPath returns the attempt-log path using the --db flag
// (highest priority), then MATHDRILL_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
