// gemshift is a cyclic row/column-shift match-3 puzzle for the terminal.
//
// Usage:
//
//	gemshift play            - Pick a board from the menu and play
//	gemshift play --level X  - Play a built-in level or a level file
//	gemshift serve           - Start SSH server for remote play
//	gemshift levels          - List available levels
//	gemshift hint            - Print the moves that make a match
//	gemshift stats           - Summarize the commit journal
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible boards
//	--config <path>   - Use a custom config YAML
//	--preset <name>   - Board preset: small, classic, large, dense
//	--db <path>       - Set journal path (default: ~/.gemshift/journal.db)
//	--debug           - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemshift/internal/storage"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
	flagPreset string
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemshift",
	Short: "GemShift - shift rows and columns to match gems",
	Long: `GemShift is a match-3 puzzle played in the terminal. Instead of
swapping neighbours, you rotate a whole row or column; every run of three
or more equal gems explodes and new gems fall in from the top.

Available commands:
  play     - Play a random board or a level
  serve    - Start SSH server for remote play
  levels   - Show available levels
  hint     - Print the moves that make a match
  stats    - Summarize the commit journal

Examples:
  gemshift play
  gemshift play --level chain
  gemshift play --preset dense --seed 42
  gemshift serve --ssh :2222
  gemshift hint --level queue`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Board preset: small, classic, large, dense")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to commit journal database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(statsCmd)
}
