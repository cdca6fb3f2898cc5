// breakout is the classic brick breaking game for the terminal, playable
// locally, over SSH, or in a browser.
//
// Usage:
//
//	breakout                 - Play in the current terminal
//	breakout serve           - Start SSH server for remote play
//	breakout web             - Start web server with a browser canvas client
//
// Global flags:
//
//	--fps <rate>      - Set frame rate (default: 60)
//	--config <path>   - Path to custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - classic brick breaking in your terminal",
	Long: `Breakout is the classic brick breaking game, playable right in your
terminal, over SSH, or in a browser. Run with no arguments to play locally.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  P          - Pause
  Q/Ctrl+C   - Quit

Examples:
  breakout
  breakout --fps 30
  breakout --config ./my-breakout.yaml
  breakout serve --ssh :2222
  breakout web --addr :8080`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}

// loadGameConfig resolves the game geometry, honoring --config.
func loadGameConfig() config.Breakout {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
