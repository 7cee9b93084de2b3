package tui

import "testing"

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want Action
	}{
		{"up", ActionUp},
		{"k", ActionUp},
		{"down", ActionDown},
		{"left", ActionLeft},
		{"h", ActionLeft},
		{"l", ActionRight},
		{"a", ActionShiftRowLeft},
		{"d", ActionShiftRowRight},
		{"w", ActionShiftColUp},
		{"s", ActionShiftColDown},
		{"enter", ActionCommit},
		{"esc", ActionCancel},
		{"t", ActionHint},
		{"r", ActionReset},
		{"?", ActionHelp},
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"x", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.MapKey(keyMsg(tt.key)); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestMapKeySkipsDisabledBindings(t *testing.T) {
	km := DefaultKeyMap()
	km.Commit.SetEnabled(false)

	if got := km.MapKey(keyMsg("enter")); got != ActionNone {
		t.Errorf("disabled commit mapped to %v", got)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestHelpFollowsState(t *testing.T) {
	m := newLevelModel(t, "queue", nil)
	if m.keys.Commit.Enabled() {
		t.Error("commit should be disabled while idle")
	}

	m = press(t, m, "d")
	if !m.keys.Commit.Enabled() {
		t.Error("commit should be enabled while shifting")
	}
	if m.keys.ShiftColUp.Enabled() {
		t.Error("column keys should be disabled during a row shift")
	}
}
