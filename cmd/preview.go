package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/check"
	"github.com/quizdeck/quizdeck/internal/content"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Drill through a deck in plain text (no database)",
	Long: `Answer a deck's questions straight from the terminal prompt.

This is a stateless tool — no database, no session store, no events.
Useful for proofreading a deck before handing it to students.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 0, "Number of questions to ask (default: whole deck)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	deck, err := resolveDeck(cmd)
	if err != nil {
		return fmt.Errorf("load deck: %w", err)
	}

	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 || count > len(deck.Questions) {
		count = len(deck.Questions)
	}

	// Local grading only; a remote endpoint would defeat the point of a
	// quick offline proofread.
	checker := check.NewLocalService(deck)
	renderer := content.NewPlainRenderer()
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	fmt.Printf("Deck: %s — %d questions\n\n", deck.Title, len(deck.Questions))

	var correct, answered int

	for i := 0; i < count; i++ {
		q := &deck.Questions[i]

		fmt.Printf("── Question %d/%d ──\n", i+1, count)
		fmt.Println(renderer.Render(q.Stem).String())
		for _, opt := range q.Options {
			fmt.Printf("  %s) %s\n", opt.ID, renderer.Render(opt.Text).String())
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answerID := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if answerID == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}
		if !q.HasOption(answerID) {
			fmt.Print("(no such option, skipped)\n\n")
			continue
		}

		res, err := checker.CheckAnswer(ctx, q.ID, answerID)
		if err != nil {
			fmt.Printf("check failed: %v\n\n", err)
			continue
		}

		answered++
		if res.IsCorrect {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", res.CorrectAnswerID)
		}

		explanation := res.Explanation
		if explanation == "" {
			explanation = q.Explanation
		}
		if explanation != "" {
			fmt.Printf("Explanation: %s\n", renderer.Render(explanation).String())
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, answered)
	return nil
}
