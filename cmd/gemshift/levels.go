package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemshift/internal/levels"
)

var flagLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in levels, or the levels found below --dir.

Examples:
  gemshift levels
  gemshift levels --dir ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "dir", "", "Directory of level YAML files (default: built-in levels)")
}

func runLevels(_ *cobra.Command, _ []string) {
	loader := levels.Builtin()
	if flagLevelsDir != "" {
		loader = levels.NewLoader(flagLevelsDir)
	}

	lvls, err := loader.LoadAll()
	if err != nil {
		fail("%v", err)
	}

	if len(lvls) == 0 {
		fmt.Println("No levels found.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range lvls {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "----", "----")

	for _, lvl := range lvls {
		size := fmt.Sprintf("%dx%d", lvl.Width(), lvl.Height())
		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, lvl.ID, size, lvl.Name)
		if lvl.Description != "" {
			fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "", "", lvl.Description)
		}
	}

	fmt.Println()
	fmt.Println("Run 'gemshift play --level <id>' to play a level.")
}
