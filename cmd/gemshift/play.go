package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gemshift/internal/levels"
	"github.com/vovakirdan/gemshift/internal/platform/tui"
	"github.com/vovakirdan/gemshift/internal/storage"
)

var (
	flagLevel  string
	flagRandom bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play GemShift",
	Long: `Start playing. Without flags a menu offers a random board per preset
and every built-in level.

Controls:
  Arrows/HJKL - Move the cursor
  A/D         - Shift the cursor's row left/right
  W/S         - Shift the cursor's column up/down
  Enter       - Commit the shift (reverted if it makes no match)
  Esc         - Cancel the shift, or back to the menu
  T           - Load a hint
  R           - New board / restart level
  Q/Ctrl+C    - Quit

Examples:
  gemshift play
  gemshift play --random --preset large
  gemshift play --level chain
  gemshift play --level ./my-level.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Built-in level ID or path to a level YAML")
	playCmd.Flags().BoolVar(&flagRandom, "random", false, "Skip the menu and play a random board")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fail("%v", err)
	}
}

// play runs the selected board or the menu session. Errors are returned so
// the journal and debug log are closed before the process exits.
func play() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Open the journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open commit journal: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	session := fmt.Sprintf("local-%d", time.Now().UnixNano())

	var runErr error
	switch {
	case flagLevel != "":
		lvl, lvlErr := levels.Resolve(flagLevel)
		if lvlErr != nil {
			return lvlErr
		}
		runErr = tui.Run(tui.Options{
			Config:  cfg,
			Level:   &lvl,
			Store:   store,
			Session: session,
			Seed:    flagSeed,
			Logger:  logger,
		})

	case flagRandom:
		runErr = tui.Run(tui.Options{
			Config:  cfg,
			Store:   store,
			Session: session,
			Seed:    flagSeed,
			Logger:  logger,
		})

	default:
		lvls, lvlErr := levels.Builtin().LoadAll()
		if lvlErr != nil {
			return lvlErr
		}

		// Get terminal size early for the menu
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		runErr = tui.RunSession(tui.SessionConfig{
			Game:    cfg,
			Levels:  lvls,
			Store:   store,
			Session: session,
			Seed:    flagSeed,
			Logger:  logger,
			Width:   width,
			Height:  height,
		})
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
