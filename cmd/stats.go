package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print practice statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Int("sessions", 10, "Number of recent sessions to list")
}

func runStats(cmd *cobra.Command, args []string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	ctx := context.Background()
	events := st.EventRepo()

	correct, total, err := events.AnswerTotals(ctx)
	if err != nil {
		return fmt.Errorf("read answer totals: %w", err)
	}

	fmt.Println("Quizdeck — practice statistics")
	fmt.Println()
	if total == 0 {
		fmt.Println("No answers recorded yet. Run `quizdeck practice` first.")
		return nil
	}

	fmt.Printf("Answers:  %d correct / %d total (%.0f%%)\n",
		correct, total, float64(correct)/float64(total)*100)

	checks, err := events.CheckRequestStats(ctx)
	if err != nil {
		return fmt.Errorf("read check stats: %w", err)
	}
	if checks.Total > 0 {
		fmt.Printf("Checks:   %d requests, %d failed, avg %dms\n",
			checks.Total, checks.Failed, checks.AvgMs)
		services := make([]string, 0, len(checks.ByService))
		for name := range checks.ByService {
			services = append(services, name)
		}
		sort.Strings(services)
		for _, name := range services {
			fmt.Printf("          %s: %d\n", name, checks.ByService[name])
		}
	}

	limit, _ := cmd.Flags().GetInt("sessions")
	sessions, err := events.SessionSummaries(ctx, limit)
	if err != nil {
		return fmt.Errorf("read sessions: %w", err)
	}
	if len(sessions) > 0 {
		fmt.Println()
		fmt.Println("Recent sessions:")
		for _, s := range sessions {
			fmt.Printf("  %s  %-12s %2d/%2d correct  %s\n",
				s.Timestamp.Format("2006-01-02 15:04"),
				s.DeckID,
				s.CorrectAnswers, s.QuestionsChecked,
				(time.Duration(s.DurationSecs) * time.Second).String())
		}
	}

	return nil
}
