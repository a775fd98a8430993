package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/exam"
	"github.com/quizdeck/quizdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Exam practice in the terminal",
	Long:  "Quizdeck — terminal exam trainer: work a deck of multiple-choice questions, check answers against a grading service, and track your results.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// .env is optional; env vars already set win.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDECK_DB env var)")
	rootCmd.PersistentFlags().String("deck", "", "Path to a deck JSON file (default: built-in sample deck)")
	rootCmd.PersistentFlags().String("mode", "", "Session mode: strict or learning (overrides QUIZDECK_MODE)")
	rootCmd.PersistentFlags().String("role", "", "User role: guest, demo, subscriber or admin (overrides QUIZDECK_ROLE)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveDeck loads the deck named by --deck, or the built-in sample deck.
func resolveDeck(cmd *cobra.Command) (*exam.Deck, error) {
	if p, _ := cmd.Flags().GetString("deck"); p != "" {
		return exam.LoadDeck(p)
	}
	return exam.SampleDeck(), nil
}
