// mmheroes is a text-mode simulation of a student's exam week at the
// faculty of mathematics and mechanics.
//
// Usage:
//
//	mmheroes play            - Play in the terminal
//	mmheroes serve           - Start SSH server for remote play
//	mmheroes scores          - Show the hall of fame and recent runs
//	mmheroes replay <tape>   - Replay a recorded input tape
//
// Global flags:
//
//	--config <path> - Path to a YAML config file
//	--seed <value>  - RNG seed for reproducible runs (0 = time-based)
//	--mode <mode>   - Game mode: normal, select, god
//	--db <path>     - Scores database path (default: ~/.mmheroes/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmheroes/mmheroes-go/internal/config"
	"github.com/mmheroes/mmheroes-go/internal/game"
)

var (
	// Global flags
	flagConfig string
	flagSeed   uint64
	flagMode   string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mmheroes",
	Short: "Heroes of Math and Mech - survive the exam week",
	Long: `mmheroes simulates six days of an exam week: sleep, study, take
exams, talk to classmates, earn money and try to stay alive.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  scores   - View the hall of fame and recent runs
  replay   - Replay a recorded input tape

Examples:
  mmheroes play
  mmheroes play --mode god --seed 42
  mmheroes serve --ssh :2222
  mmheroes scores
  mmheroes replay 2↓r3r`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Game mode: normal, select, god")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadOptions merges the config file with command-line overrides.
func loadOptions() (config.Options, error) {
	opts, err := config.Load(flagConfig)
	if err != nil {
		return opts, err
	}
	if flagSeed != 0 {
		opts.Seed = flagSeed
	}
	if flagMode != "" {
		opts.Mode = flagMode
	}
	if flagDBPath != "" {
		opts.Storage.DBPath = flagDBPath
	}
	return opts, nil
}

// gameMode resolves the effective mode, exiting on an unknown one.
func gameMode(opts config.Options) game.Mode {
	mode, err := opts.GameMode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return mode
}
