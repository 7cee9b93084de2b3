package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemshift/internal/levels"
	"github.com/vovakirdan/gemshift/internal/puzzle"
)

var (
	flagHintLevel string
	flagHintApply bool
)

var hintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Print the moves that make a match",
	Long: `Builds a board from a level, or a random board from the config and
--seed, and lists every shift that produces at least one match.

With --apply, the first candidate is committed and the cascade is printed.

Examples:
  gemshift hint --level queue
  gemshift hint --seed 42 --preset small
  gemshift hint --level chain --apply --debug`,
	Args: cobra.NoArgs,
	Run:  runHint,
}

func init() {
	hintCmd.Flags().StringVar(&flagHintLevel, "level", "", "Built-in level ID or path to a level YAML")
	hintCmd.Flags().BoolVar(&flagHintApply, "apply", false, "Commit the first candidate and print the cascade")
}

func runHint(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	opts, err := cfg.EngineOptions()
	if err != nil {
		fail("%v", err)
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts.Rand = rand.New(rand.NewSource(seed))
	opts.Logger = newLogger(os.Stderr, "gemshift")

	var engine *puzzle.Engine
	if flagHintLevel != "" {
		lvl, lvlErr := levels.Resolve(flagHintLevel)
		if lvlErr != nil {
			fail("%v", lvlErr)
		}
		engine, err = lvl.NewEngine(opts)
	} else {
		engine, err = puzzle.New(opts)
	}
	if err != nil {
		fail("%v", err)
	}

	board := engine.Snapshot()
	fmt.Printf("Board (%dx%d, seed %d):\n\n", board.Width(), board.Height(), seed)
	printGrid(board)
	fmt.Println()

	moves := engine.CandidateMoves()
	if len(moves) == 0 {
		fmt.Println("No shift makes a match.")
		return
	}

	fmt.Printf("%d candidate moves:\n", len(moves))
	for _, m := range moves {
		matches, _ := engine.Evaluate(m)
		fmt.Printf("  %-12s  %d match(es), %d gems\n", m, len(matches), len(puzzle.MatchedPositions(matches)))
	}

	if !flagHintApply {
		return
	}

	res, err := engine.Commit(moves[0])
	if err != nil {
		fail("%v", err)
	}
	fmt.Println()
	fmt.Printf("Committed %s: %d step(s)", moves[0], res.Steps)
	if res.Halted {
		fmt.Print(", halted by safety bound")
	}
	fmt.Println()
	for i, phase := range res.History {
		fmt.Printf("  step %d: removed %d", i+1, len(phase.Removed))
		for _, rep := range phase.Replacements {
			fmt.Printf("  col %d <- %s", rep.Column, gemLetters(rep.Gems))
		}
		fmt.Println()
	}
	fmt.Println()
	printGrid(engine.Snapshot())
}

func printGrid(g *puzzle.Grid) {
	for y := range g.Height() {
		fmt.Print("  ")
		for x := range g.Width() {
			gem, _ := g.Get(x, y)
			fmt.Printf("%c ", gem.Type.Char())
		}
		fmt.Println()
	}
}

func gemLetters(types []puzzle.GemType) string {
	letters := make([]rune, len(types))
	for i, t := range types {
		letters[i] = t.Char()
	}
	return string(letters)
}
