package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Bird",
	Long: `Start the game in this terminal.

Controls:
  P/Enter      - Play (from the menu or after dying)
  Space/Up/W   - Flap
  Q            - Quit (menu and death screen)
  Ctrl+S       - Save a screenshot
  Ctrl+C       - Quit immediately

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The playfield has a fixed size; warn when it will be cut off
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.Screen.Width || h < cfg.Screen.Height {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the playfield needs %dx%d\n",
				w, h, cfg.Screen.Width, cfg.Screen.Height)
		}
	}

	logger, closeLog := newFileLogger("flappy")
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, tui.Options{
		Runtime: core.RuntimeConfig{
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
		Player: os.Getenv("USER"),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
