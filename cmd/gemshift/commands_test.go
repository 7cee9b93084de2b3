package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/gemshift/internal/puzzle"
	"github.com/vovakirdan/gemshift/internal/storage"
)

// withFlags points the journal at a temp database and restores the
// package flags when the test ends.
func withFlags(t *testing.T) string {
	t.Helper()
	db, level, cfg, preset, session := flagDBPath, flagLevel, flagConfig, flagPreset, flagStatsSession
	random, debug, clearFlag, recent := flagRandom, flagDebug, flagStatsClear, flagStatsRecent
	t.Cleanup(func() {
		flagDBPath, flagLevel, flagConfig, flagPreset, flagStatsSession = db, level, cfg, preset, session
		flagRandom, flagDebug, flagStatsClear, flagStatsRecent = random, debug, clearFlag, recent
	})

	flagDBPath = filepath.Join(t.TempDir(), "journal.db")
	flagConfig, flagPreset, flagLevel, flagStatsSession = "", "", "", ""
	flagRandom, flagDebug, flagStatsClear = false, false, false
	flagStatsRecent = 10
	return flagDBPath
}

func TestPlayReturnsLevelError(t *testing.T) {
	dbPath := withFlags(t)
	flagLevel = "no-such-level"

	err := play()
	if err == nil || !strings.Contains(err.Error(), "no-such-level") {
		t.Fatalf("play() = %v, want level not found", err)
	}

	// The journal was opened and released; it opens cleanly again.
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("reopening journal failed: %v", err)
	}
	store.Close()
}

func TestStatsClearRequiresSession(t *testing.T) {
	withFlags(t)
	flagStatsClear = true

	var buf bytes.Buffer
	if err := showStats(&buf); err == nil {
		t.Fatal("expected an error for --clear without --session")
	}
}

func TestStatsSummary(t *testing.T) {
	dbPath := withFlags(t)

	var buf bytes.Buffer
	if err := showStats(&buf); err != nil {
		t.Fatalf("showStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No commits recorded yet.") {
		t.Errorf("empty journal output:\n%s", buf.String())
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	res := puzzle.Resolution{Steps: 2}
	if _, err := store.RecordCommit("s1", "chain", []puzzle.MoveAction{puzzle.RowMove(2, -1)}, res); err != nil {
		t.Fatalf("RecordCommit failed: %v", err)
	}
	store.Close()

	buf.Reset()
	if err := showStats(&buf); err != nil {
		t.Fatalf("showStats failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Commits:        1", "row 2 -1", "chain"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
