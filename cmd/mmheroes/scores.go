package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmheroes/mmheroes-go/internal/scores"
)

var (
	flagImportLegacy string
	flagExportLegacy string
	flagRecent       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the hall of fame",
	Long: `Display the hall of fame and the most recent runs.

The --import-legacy flag reads a 175-byte MMHEROES.DAT score file from
the DOS original (CP-866 names) and merges it into the database;
--export-legacy writes the current hall of fame back in that format.

Examples:
  mmheroes scores
  mmheroes scores --recent 20
  mmheroes scores --import-legacy ./MMHEROES.DAT
  mmheroes scores --export-legacy ./MMHEROES.DAT`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagImportLegacy, "import-legacy", "", "Path to a DOS score file to import")
	scoresCmd.Flags().StringVar(&flagExportLegacy, "export-legacy", "", "Write the hall of fame to a DOS score file")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 10, "How many recent runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	opts, err := loadOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := scores.Open(opts.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagImportLegacy != "" {
		data, readErr := os.ReadFile(flagImportLegacy)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading legacy score file: %v\n", readErr)
			os.Exit(1)
		}
		imported, importErr := store.ImportLegacy(data)
		if importErr != nil {
			fmt.Fprintf(os.Stderr, "Error importing legacy scores: %v\n", importErr)
			os.Exit(1)
		}
		fmt.Printf("Imported %d legacy records\n\n", imported)
	}

	fame, err := store.HallOfFame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving hall of fame: %v\n", err)
		os.Exit(1)
	}

	if flagExportLegacy != "" {
		if writeErr := os.WriteFile(flagExportLegacy, scores.EncodeLegacy(fame), 0o644); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Error writing legacy score file: %v\n", writeErr)
			os.Exit(1)
		}
		fmt.Printf("Exported the hall of fame to %s\n\n", flagExportLegacy)
	}

	fmt.Println("Hall of Fame")
	fmt.Println()
	if len(fame) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mmheroes play' to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %-32s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-32s  %s\n", "----", "----", "-----")
	for i, entry := range fame {
		fmt.Printf("  %-4d  %-32s  %d\n", i+1, entry.Name, entry.Score)
	}

	recent, err := store.RecentRuns(flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving recent runs: %v\n", err)
		os.Exit(1)
	}
	if len(recent) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-32s  %-6s  %-6s  %s\n", "Name", "Score", "Passed", "Fate")
	for _, run := range recent {
		fate := "survived"
		if run.CauseOfDeath != "" {
			fate = run.CauseOfDeath
		}
		fmt.Printf("  %-32s  %-6d  %-6d  %s\n", run.Name, run.Score, run.PassedExams, fate)
	}
}
