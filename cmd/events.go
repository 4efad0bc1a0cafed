package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/hyejin/orbquest/internal/store"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect the event log",
}

var eventsScansCmd = &cobra.Command{
	Use:   "scans",
	Short: "List recent scan passes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		eventRepo, closeFn, err := eventRepoFor(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		records, err := eventRepo.QueryScanEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query scan events: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No scan events found.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-36s  %-8s  %s\n",
			"Seq", "Timestamp", "Session", "Objects", "Anchors")
		fmt.Println(strings.Repeat("─", 84))
		for _, rec := range records {
			fmt.Printf("%-6d  %-19s  %-36s  %-8d  %d\n",
				rec.Sequence,
				rec.Timestamp.Local().Format("2006-01-02 15:04:05"),
				rec.SessionID,
				rec.ObjectsDetected,
				rec.AnchorsCreated,
			)
		}
		return nil
	},
}

var eventsSpheresCmd = &cobra.Command{
	Use:   "spheres",
	Short: "List recent sphere collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		eventRepo, closeFn, err := eventRepoFor(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		records, err := eventRepo.QueryCollectionEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query collection events: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No collection events found.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-24s  %-6s  %s\n",
			"Seq", "Timestamp", "Object", "Total", "OK")
		fmt.Println(strings.Repeat("─", 70))
		for _, rec := range records {
			name := ""
			if rec.ObjectName != nil {
				name = *rec.ObjectName
			}
			if len(name) > 24 {
				name = name[:24]
			}
			ok := "✓"
			if !rec.Accepted {
				ok = "✗"
			}
			fmt.Printf("%-6d  %-19s  %-24s  %-6d  %s\n",
				rec.Sequence,
				rec.Timestamp.Local().Format("2006-01-02 15:04:05"),
				name,
				rec.TotalAfter,
				ok,
			)
		}
		return nil
	},
}

// eventRepoFor opens the store for a subcommand and hands back the repo
// with a cleanup func.
func eventRepoFor(cmd *cobra.Command) (store.EventRepo, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := openStore(dbPath)
	if err != nil {
		return nil, nil, err
	}
	eventRepo, err := st.EventRepo()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("init event repo: %w", err)
	}
	return eventRepo, func() { st.Close() }, nil
}

func init() {
	eventsScansCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	eventsSpheresCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	eventsCmd.AddCommand(eventsScansCmd)
	eventsCmd.AddCommand(eventsSpheresCmd)
}
