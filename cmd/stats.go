package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show scanning and collection statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := openStore(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("init event repo: %w", err)
		}

		ctx := context.Background()
		total, err := eventRepo.CollectionTotal(ctx)
		if err != nil {
			return fmt.Errorf("query collection total: %w", err)
		}
		rejected, err := eventRepo.RejectedCollections(ctx)
		if err != nil {
			return fmt.Errorf("query rejected collections: %w", err)
		}
		scans, err := eventRepo.ScanStats(ctx)
		if err != nil {
			return fmt.Errorf("query scan stats: %w", err)
		}

		fmt.Println("Orbquest Statistics")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-24s %d\n", "Spheres collected", total)
		fmt.Printf("%-24s %d\n", "Rejected collections", rejected)
		fmt.Printf("%-24s %d\n", "Scan passes", scans.Passes)
		fmt.Printf("%-24s %d\n", "Objects detected", scans.TotalObjects)
		fmt.Printf("%-24s %d\n", "Anchors placed", scans.TotalAnchors)
		if scans.Passes > 0 {
			fmt.Printf("%-24s %.1f\n", "Objects per scan", float64(scans.TotalObjects)/float64(scans.Passes))
		}
		return nil
	},
}
