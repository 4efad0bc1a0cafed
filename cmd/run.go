package cmd

import (
	"fmt"
	"os"

	"github.com/hyejin/orbquest/internal/app"
	"github.com/hyejin/orbquest/internal/store"
	"github.com/hyejin/orbquest/internal/vision"
	"github.com/spf13/cobra"
)

// scanCmd is an explicit alias for the default TUI launch.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Launch the scanner",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("init event repo: %w", err)
	}

	opts := app.Options{
		EventRepo: eventRepo,
		Settings:  st.SettingsRepo(),
	}

	provider, err := vision.NewProviderFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Vision provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Scanning will be unavailable.")
	} else {
		opts.Provider = provider
	}

	return app.Run(opts)
}
