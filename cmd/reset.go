package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset collected spheres and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		flagsOnly, _ := cmd.Flags().GetBool("flags-only")
		yes, _ := cmd.Flags().GetBool("yes")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if flagsOnly {
			return resetTutorialFlags(dbPath)
		}

		if !yes {
			fmt.Printf("This deletes all spheres, scans, and settings at %s.\nType 'yes' to continue: ", dbPath)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("Nothing to reset.")
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}
		fmt.Println("All progress reset.")
		return nil
	},
}

// resetTutorialFlags clears only the first-run flags so the
// walkthroughs play again, leaving the collection intact.
func resetTutorialFlags(dbPath string) error {
	st, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	settings := st.SettingsRepo()
	if err := settings.SetHasSeenHomeTutorial(ctx, false); err != nil {
		return fmt.Errorf("reset home flag: %w", err)
	}
	if err := settings.SetHasSeenARTutorial(ctx, false); err != nil {
		return fmt.Errorf("reset AR flag: %w", err)
	}
	fmt.Println("Tutorial flags reset. Walkthroughs will play on next launch.")
	return nil
}

func init() {
	resetCmd.Flags().Bool("flags-only", false, "Reset only the tutorial flags, keep the collection")
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
