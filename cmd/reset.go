package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all user data (accounts, history, leaderboard, questions)",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This deletes every account, transcript, leaderboard entry, and question.")
			fmt.Println("Run again with --force to proceed.")
			return nil
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := os.RemoveAll(cfg.DataDir); err != nil {
			return fmt.Errorf("remove data dir: %w", err)
		}
		fmt.Println("Removed", cfg.DataDir)

		// The attempt log may live outside the data dir.
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove attempt log: %w", err)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation message")
}
