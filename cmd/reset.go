package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all practice history",
	Long:  "Deletes the local database holding answer history, session logs, and snapshots.",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No practice history found.")
		return nil
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		fmt.Printf("Delete all practice history at %s? [y/N] ", dbPath)
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return nil
		}
		answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.Remove(dbPath); err != nil {
		return fmt.Errorf("delete database: %w", err)
	}
	// SQLite leaves WAL and shared-memory files next to the database.
	os.Remove(dbPath + "-wal")
	os.Remove(dbPath + "-shm")

	fmt.Println("Practice history deleted.")
	return nil
}
