package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunar-gate/skilldeck/internal/api"
	"github.com/lunar-gate/skilldeck/internal/config"
	"github.com/lunar-gate/skilldeck/internal/log"
	"github.com/lunar-gate/skilldeck/internal/session"
	"github.com/lunar-gate/skilldeck/internal/telemetry"
	"github.com/lunar-gate/skilldeck/internal/tui"
	"github.com/lunar-gate/skilldeck/pkg/version"
)

// runTUI executes the TUI when no subcommand is specified.
func runTUI(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	paths := config.GetPaths(cfg)

	// Initialize logger
	if err := log.Init(paths.LogFile); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = log.Close()
	}()

	printBanner()

	log.Printf("\n\U0001F4C1 Base directory: %s\n", cfg.BaseDir)
	log.Printf("\U0001F4C1 Session database: %s\n", paths.Database)
	log.Printf("\U0001F4C1 Log file: %s\n", paths.LogFile)
	log.Printf("\U0001F310 API: %s\n", cfg.API.BaseURL)

	// Open the session store
	store, err := session.Open(paths.Database)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Errorf("\U000026A0\U0000FE0F  Failed to close session store: %v\n", err)
		}
	}()

	client, err := api.New(cfg.API.BaseURL, store)
	if err != nil {
		return fmt.Errorf("create API client: %w", err)
	}

	if _, signedIn := store.Token(); signedIn {
		log.Println("\U0001F511 Session: signed in")
	} else {
		log.Println("\U0001F511 Session: not signed in")
	}

	// Telemetry status
	if telemetry.IsEnabled() {
		log.Println("\n\U0001F4CA Telemetry: ON (set SKILLDECK_TELEMETRY_TRACKING_ENABLED=false to disable)")
		log.Printf("   Anon ID: %s\n", store.GetOrCreateTrackingID())
	} else {
		log.Println("\n\U0001F4CA Telemetry: OFF")
	}

	log.Println("\n\U0001F680 Launching Skilldeck TUI...")
	log.Println("   Press / to search, ←→ to page, q to quit")

	return tui.Run(cfg, store, client, telemetryClient)
}

func printBanner() {
	banner := `
   ╔═══════════════════════════════════════════════════╗
   ║   ███████╗██╗  ██╗██╗██╗     ██╗     ███████╗     ║
   ║   ██╔════╝██║ ██╔╝██║██║     ██║     ██╔════╝     ║
   ║   ███████╗█████╔╝ ██║██║     ██║     ███████╗     ║
   ║   ╚════██║██╔═██╗ ██║██║     ██║     ╚════██║     ║
   ║   ███████║██║  ██╗██║███████╗███████╗███████║     ║
   ║   ╚══════╝╚═╝  ╚═╝╚═╝╚══════╝╚══════╝╚══════╝     ║
   ╠═══════════════════════════════════════════════════╣
   ║        YOUR SKILLS, ONE DECK, ZERO MOUSE          ║
   ╚═══════════════════════════════════════════════════╝
`
	fmt.Print(banner)
	fmt.Printf("   Version: %s\n", version.Short())
}
