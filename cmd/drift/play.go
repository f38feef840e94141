package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/drift-arcade/internal/core"
	"github.com/vovakirdan/drift-arcade/internal/games/drifter"
	"github.com/vovakirdan/drift-arcade/internal/platform/tui"
	"github.com/vovakirdan/drift-arcade/internal/registry"
	"github.com/vovakirdan/drift-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. With no argument, launches the drifter cockpit.

Controls:
  A/D or Left/Right  - Turn
  W/Up/Space         - Thrust
  P                  - Pause
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Difficulty presets:
  easy   - Generous air supply, sparse rock field
  normal - The intended balance
  hard   - Tight air supply, dense rock field
  fixed  - Use the config file values as-is

Passing --difficulty skips the preset picker; otherwise it is shown
before launch.

Examples:
  drift play
  drift play --difficulty easy
  drift play --seed 1724612345
  drift play --config ./my-drifter.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "drifter"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'drift list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for the preset picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty for games before creation
	switch gameID {
	case "drifter":
		drifter.SetConfigPath(flagConfig)

		if flagDifficulty != "" {
			drifter.SetDifficultyPreset(flagDifficulty)
			break
		}

		// Show the difficulty preset picker
		selection, updatedCfg, selErr := tui.RunDrifterModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		drifter.SetDifficultyPreset(string(selection.Preset))
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
