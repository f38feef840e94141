// drift is a terminal arcade where you pilot a thruster craft through a
// field of drifting rock, chasing air pods before your supply runs out.
//
// Usage:
//
//	drift play               - Jump straight into the cockpit
//	drift menu               - Start menu to pick games interactively
//	drift serve              - Start SSH server for remote play
//	drift list               - List available games
//	drift scores             - Show high scores and recent runs
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set world seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Path to custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/drift-arcade/internal/games/drifter"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drift",
	Short: "Drift Arcade - Pilot a thruster craft in your terminal",
	Long: `Drift Arcade is a terminal game about momentum. Your craft never
stops drifting; nudge it with short burns, dodge the rocks, and grab
air pods before the supply gauge hits zero.

Available commands:
  play     - Play directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  list     - Show all available games
  scores   - View high scores and recent runs

Examples:
  drift play
  drift play --difficulty hard
  drift play --seed 1724612345 (replay a recorded run's world)
  drift menu
  drift serve --ssh :2222
  drift scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
