package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmheroes/mmheroes-go/internal/platform/tui"
	"github.com/mmheroes/mmheroes-go/internal/scores"
)

var (
	flagName   string
	flagRecord string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start an exam week in the current terminal.

Controls:
  Up/Down    - Move the menu cursor
  Enter      - Select
  Q/Ctrl+C   - Quit

Modes:
  normal - Random character, the classic game
  select - Pick one of the four play styles
  god    - Choose your stats by hand

Examples:
  mmheroes play
  mmheroes play --mode select
  mmheroes play --seed 42 --name Sasha
  mmheroes play --record ./week.tape`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name for the hall of fame")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write the input tape to this file when the game ends")
}

func runPlay(_ *cobra.Command, _ []string) {
	opts, err := loadOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mode := gameMode(opts)

	name := opts.Name
	if flagName != "" {
		name = flagName
	}

	// The game renders into a fixed 80x24 grid.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < 80 || h < 24) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs at least 80x24\n", w, h)
	}

	store, err := scores.Open(opts.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	if store != nil && opts.Storage.LegacyScoreFile != "" {
		if data, readErr := os.ReadFile(opts.Storage.LegacyScoreFile); readErr == nil {
			//nolint:errcheck // Best-effort import
			store.ImportLegacy(data)
		}
	}

	tape, runErr := tui.Run(mode, opts.Seed, name, store, flagRecord != "")

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if flagRecord != "" && tape != "" {
		if writeErr := os.WriteFile(flagRecord, []byte(tape+"\n"), 0o644); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Error writing tape: %v\n", writeErr)
			os.Exit(1)
		}
		fmt.Printf("Input tape written to %s\n", flagRecord)
	}
}
