package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("--limit must not be negative")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.AttemptRepo()
		attempts, err := repo.Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}
		total, err := repo.Count(cmd.Context())
		if err != nil {
			return fmt.Errorf("count attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintln(out, "No attempts yet.")
			return nil
		}

		// Header.
		fmt.Fprintf(out, "%-36s  %-18s  %8s  %5s  %4s\n", "ID", "Finished", "Duration", "Score", "%")
		fmt.Fprintln(out, strings.Repeat("─", 79))

		for _, a := range attempts {
			secs := int(a.Duration().Seconds())
			fmt.Fprintf(out, "%-36s  %-18s  %5d:%02d  %3d/%d  %3.0f%%\n",
				a.ID, a.FinishedAt.Local().Format("2006-01-02 15:04"),
				secs/60, secs%60, a.Score, a.Total, a.Percentage())
		}

		fmt.Fprintf(out, "\n%d of %d attempts\n", len(attempts), total)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum attempts to show (0 for all)")
}
