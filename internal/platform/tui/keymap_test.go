package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andrewsmnv/polyarena/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		isQuit   bool
	}{
		{"a rotates left", runeKey('a'), core.ActionLeft, false},
		{"left arrow rotates left", tea.KeyMsg(tea.Key{Type: tea.KeyLeft}), core.ActionLeft, false},
		{"d rotates right", runeKey('d'), core.ActionRight, false},
		{"w thrusts", runeKey('w'), core.ActionThrust, false},
		{"up arrow thrusts", tea.KeyMsg(tea.Key{Type: tea.KeyUp}), core.ActionThrust, false},
		{"space fires", runeKey(' '), core.ActionFire, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC}), core.ActionQuit, true},
		{"unbound key maps to none", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tc.msg)
			if action != tc.expected {
				t.Errorf("action = %v, expected %v", action, tc.expected)
			}
			if isQuit != tc.isQuit {
				t.Errorf("isQuit = %v, expected %v", isQuit, tc.isQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('w'), &frame); quit {
		t.Error("thrust key reported as quit")
	}
	if !frame.Has(core.ActionThrust) {
		t.Error("frame missing thrust action")
	}

	if quit := km.MapKeyToFrame(runeKey('z'), &frame); quit {
		t.Error("unbound key reported as quit")
	}
	if len(frame.Actions) != 1 {
		t.Errorf("unbound key changed the frame: %v", frame.Actions)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{"k moves up", runeKey('k'), MenuActionUp},
		{"j moves down", runeKey('j'), MenuActionDown},
		{"a cycles left", runeKey('a'), MenuActionLeft},
		{"d cycles right", runeKey('d'), MenuActionRight},
		{"enter selects", tea.KeyMsg(tea.Key{Type: tea.KeyEnter}), MenuActionSelect},
		{"tab opens scoreboard", tea.KeyMsg(tea.Key{Type: tea.KeyTab}), MenuActionScoreboard},
		{"b goes back", runeKey('b'), MenuActionBack},
		{"q quits", runeKey('q'), MenuActionQuit},
		{"unbound key is none", runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
				t.Errorf("MapKeyToMenuAction = %v, expected %v", got, tc.expected)
			}
		})
	}
}
