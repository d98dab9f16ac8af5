package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andrewsmnv/polyarena/internal/core"
	"github.com/andrewsmnv/polyarena/internal/platform/tui"
	"github.com/andrewsmnv/polyarena/internal/registry"
	"github.com/andrewsmnv/polyarena/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade from the interactive start screen",
	Long: `Open the start screen, pick a difficulty and play. After a round
ends you return here for the next one.

Controls:
  W/S or Up/Down  - Move between rows
  A/D             - Cycle difficulty preset
  Enter           - Start
  Tab             - Leaderboard
  Q               - Quit

Examples:
  polyarena menu
  polyarena menu --fps 30
  polyarena menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	for {
		res, menuErr := tui.RunMenu(cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			break
		}
		cfg = res.Config

		if res.Quit {
			break
		}

		if res.WantsScores {
			goBack, lbErr := tui.RunLeaderboard(store, firstGameID(), cfg.ScreenW, cfg.ScreenH)
			if lbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", lbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if res.GameID == "" {
			break
		}

		game, createErr := registry.Create(res.GameID)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", createErr)
			continue
		}
		if d, ok := game.(interface{ ApplyDifficultyPreset(string) }); ok {
			d.ApplyDifficultyPreset(res.Difficulty)
		}

		// Fresh seed for every round
		cfg.Seed = time.Now().UnixNano()

		if runErr := tui.Run(game, store, cfg); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
	}

	if store != nil {
		store.Close()
	}
}

// firstGameID returns the id of the first registered game, for screens
// that need a game without an explicit pick.
func firstGameID() string {
	games := registry.List()
	if len(games) == 0 {
		return ""
	}
	return games[0].ID
}
