package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemshift/internal/storage"
)

var (
	flagStatsSession string
	flagStatsRecent  int
	flagStatsClear   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the commit journal",
	Long: `Display cascade statistics from the commit journal, overall or for
one session, followed by the most recent commits.

Examples:
  gemshift stats
  gemshift stats --recent 20
  gemshift stats --session alice-1700000000 --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&flagStatsSession, "session", "", "Only show this session")
	statsCmd.Flags().IntVar(&flagStatsRecent, "recent", 10, "Number of recent commits to show")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete the session's entries (requires --session)")
}

func runStats(_ *cobra.Command, _ []string) {
	if err := showStats(os.Stdout); err != nil {
		fail("%v", err)
	}
}

// showStats writes the journal summary to w.
func showStats(w io.Writer) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening commit journal: %w", err)
	}
	defer store.Close()

	if flagStatsClear {
		if flagStatsSession == "" {
			return errors.New("--clear requires --session")
		}
		if err := store.Clear(flagStatsSession); err != nil {
			return err
		}
		fmt.Fprintf(w, "Cleared session %s\n", flagStatsSession)
		return nil
	}

	stats, err := store.Stats(flagStatsSession)
	if err != nil {
		return err
	}

	title := "all sessions"
	if flagStatsSession != "" {
		title = flagStatsSession
	}
	fmt.Fprintf(w, "Journal - %s\n", title)
	fmt.Fprintln(w)

	if stats.Commits == 0 {
		fmt.Fprintln(w, "No commits recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'gemshift play' to record the first one!")
		return nil
	}

	fmt.Fprintf(w, "  Commits:        %d\n", stats.Commits)
	fmt.Fprintf(w, "  Gems cleared:   %d\n", stats.TotalRemoved)
	fmt.Fprintf(w, "  Cascade steps:  %d (avg %.2f, max %d)\n", stats.TotalSteps, stats.AvgSteps(), stats.MaxSteps)
	fmt.Fprintf(w, "  Halted:         %d\n", stats.HaltedCount)
	if !stats.LastCommit.IsZero() {
		fmt.Fprintf(w, "  Last commit:    %s\n", stats.LastCommit.Format("2006-01-02 15:04"))
	}

	if flagStatsSession == "" {
		if sessions, err := store.Sessions(); err == nil {
			fmt.Fprintf(w, "  Sessions:       %d\n", len(sessions))
		}
	}

	entries, err := store.Recent(flagStatsSession, flagStatsRecent)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-16s  %-10s  %-20s  %5s  %7s  %s\n", "Date", "Level", "Moves", "Steps", "Removed", "Halted")
	fmt.Fprintf(w, "  %-16s  %-10s  %-20s  %5s  %7s  %s\n", "----", "-----", "-----", "-----", "-------", "------")
	for _, e := range entries {
		level := e.Level
		if level == "" {
			level = "random"
		}
		halted := ""
		if e.Halted {
			halted = "yes"
		}
		fmt.Fprintf(w, "  %-16s  %-10s  %-20s  %5d  %7d  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), level, e.Moves, e.Steps, e.Removed, halted)
	}
	return nil
}
