package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show test statistics from the attempt log",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open attempt log: %w", err)
		}
		defer st.Close()

		totals, err := st.TotalsByOwner(ctx)
		if err != nil {
			return err
		}
		recent, err := st.RecentAttempts(ctx, 10)
		if err != nil {
			return err
		}

		if len(totals) == 0 {
			fmt.Println("No tests recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "USER\tTESTS\tBEST\tAVERAGE")
		for _, t := range totals {
			fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\n", t.Owner, t.Attempts, t.Best, t.Average)
		}
		w.Flush()

		fmt.Println()
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tUSER\tSCORE\tGRADE\tTIME")
		for _, a := range recent {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%ds\n",
				a.FinishedAt.Format("2006-01-02 15:04"),
				a.Owner, a.Score, a.Grade, a.DurationSecs)
		}
		return w.Flush()
	},
}
