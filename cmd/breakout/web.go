package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the breakout web server",
	Long: `Start an HTTP server hosting a browser canvas client.

The page draws the game on a canvas and talks to the server over a
WebSocket. Each connection plays its own game.

Examples:
  breakout web                # Listen on :8080
  breakout web --addr :3001   # Listen on port 3001

Then open http://localhost:8080 in a browser.`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP server address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	cfg := web.DefaultConfig()
	cfg.Address = flagWebAddr
	cfg.FPS = flagFPS
	cfg.Game = loadGameConfig()

	server := web.NewServer(cfg)

	fmt.Printf("Starting breakout web server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
