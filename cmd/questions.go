package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problem"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Import and export the question bank",
}

var questionsExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the question bank to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		bank := problem.NewBank()
		if err := bank.Import(cfg.BankPath()); err != nil {
			return fmt.Errorf("read question bank: %w", err)
		}
		if err := bank.Export(args[0]); err != nil {
			return err
		}
		fmt.Printf("Exported %d questions to %s\n", bank.Len(), args[0])
		return nil
	},
}

var questionsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the question bank with the questions from a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfg.EnsureDataDir(); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}

		bank := problem.NewBank()
		if err := bank.Import(args[0]); err != nil {
			return err
		}
		if err := bank.Export(cfg.BankPath()); err != nil {
			return fmt.Errorf("write question bank: %w", err)
		}
		fmt.Printf("Imported %d questions from %s\n", bank.Len(), args[0])
		return nil
	},
}

func init() {
	questionsCmd.AddCommand(questionsExportCmd)
	questionsCmd.AddCommand(questionsImportCmd)
}
