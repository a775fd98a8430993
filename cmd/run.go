package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/app"
	"github.com/quizdeck/quizdeck/internal/check"
	"github.com/quizdeck/quizdeck/internal/explain"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/store"
)

// runApp loads the deck, opens the store, builds dependencies, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	log := app.NewLogger()

	deck, err := resolveDeck(cmd)
	if err != nil {
		return fmt.Errorf("load deck: %w", err)
	}

	cfg, err := resolveQuizConfig(cmd)
	if err != nil {
		return err
	}

	opts := app.Options{
		Deck:    deck,
		Config:  cfg,
		Session: quiz.NewStore(cfg.Role),
		Log:     log,
	}

	// The store is optional: without it the app runs, it just doesn't
	// remember anything across launches.
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		if st, openErr := store.Open(dbPath); openErr == nil {
			defer st.Close()
			opts.Events = st.EventRepo()
			opts.Snapshots = st.SnapshotRepo()
		} else {
			fmt.Fprintln(os.Stderr, "warning: cannot open database:", openErr)
			fmt.Fprintln(os.Stderr, "Running without history or statistics.")
		}
	} else {
		fmt.Fprintln(os.Stderr, "warning: cannot resolve database path:", err)
	}

	checker, err := check.New(check.ConfigFromEnv(), deck, opts.Events)
	if err != nil {
		return fmt.Errorf("check service: %w", err)
	}
	opts.Checker = checker

	explainer, err := explain.New(ctx, explain.ConfigFromEnv())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Explanation provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Deeper explanations will be unavailable.")
	} else {
		opts.Explainer = explainer
	}

	return app.Run(opts)
}

// resolveQuizConfig builds the quiz config from env and applies flag
// overrides.
func resolveQuizConfig(cmd *cobra.Command) (quiz.Config, error) {
	cfg, err := quiz.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	if m, _ := cmd.Flags().GetString("mode"); m != "" {
		mode, err := quiz.ParseMode(m)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = mode
	}
	if r, _ := cmd.Flags().GetString("role"); r != "" {
		role, err := quiz.ParseRole(r)
		if err != nil {
			return cfg, err
		}
		cfg.Role = role
	}

	return cfg, nil
}
