package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmheroes/mmheroes-go/internal/game"
	"github.com/mmheroes/mmheroes-go/internal/platform/tui"
	"github.com/mmheroes/mmheroes-go/internal/render"
	"github.com/mmheroes/mmheroes-go/internal/replay"
)

var flagReplayFile string

var replayCmd = &cobra.Command{
	Use:   "replay [tape]",
	Short: "Replay a recorded input tape",
	Long: `Drive a game headlessly from a recorded input tape and print the
final screen. The tape uses one glyph per key press, with an optional
repeat count:

  ↑  - cursor up
  ↓  - cursor down
  r  - enter
  .  - any other key

For the same seed and mode a tape always reproduces the same game.

Examples:
  mmheroes replay --seed 42 '2↓r3r'
  mmheroes replay --seed 42 --file ./week.tape`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayFile, "file", "", "Read the tape from a file instead of the argument")
}

func runReplay(_ *cobra.Command, args []string) {
	opts, err := loadOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mode := gameMode(opts)

	var tape string
	switch {
	case flagReplayFile != "":
		data, readErr := os.ReadFile(flagReplayFile)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading tape: %v\n", readErr)
			os.Exit(1)
		}
		tape = strings.TrimSpace(string(data))
	case len(args) == 1:
		tape = args[0]
	default:
		fmt.Fprintln(os.Stderr, "Error: provide a tape argument or --file")
		os.Exit(1)
	}

	inputs, err := replay.Parse(tape)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing tape: %v\n", err)
		os.Exit(1)
	}

	g := game.NewGame(mode, opts.Seed, nil)
	g.Start()

	canvas := render.NewCanvas(80, 24)
	apply := func() {
		if applyErr := canvas.ApplyStream(g.Commands()); applyErr != nil {
			fmt.Fprintf(os.Stderr, "Error applying command stream: %v\n", applyErr)
			os.Exit(1)
		}
		g.ResetCommands()
	}
	apply()

	played := 0
	for _, input := range inputs {
		running := g.ContinueGame(input)
		apply()
		played++
		if !running {
			break
		}
	}

	fmt.Println(tui.RenderCanvas(canvas))
	fmt.Println()
	if g.Finished() {
		fmt.Printf("Game over after %d of %d inputs\n", played, len(inputs))
	} else {
		fmt.Printf("Tape exhausted after %d inputs, game still running\n", played)
	}
}
