package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coinrush/internal/core"
)

// recordingGame stores the direction of every frame it is stepped with.
type recordingGame struct {
	dirs   []core.Direction
	resets int
}

func (g *recordingGame) ID() string               { return "recording" }
func (g *recordingGame) Title() string            { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) State() core.GameState    { return core.GameState{Score: len(g.dirs)} }
func (g *recordingGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "board") }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.dirs = append(g.dirs, in.Direction())
	return core.StepResult{
		State:  g.State(),
		Events: []core.Event{{Name: "stepped", Fields: []any{"n", len(g.dirs)}}},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelKeysCollapseToLastDirection(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, nil)

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, runeKey('d'))
	m, cmd := update(t, m, TickMsg{})

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.dirs) != 1 {
		t.Fatalf("game stepped %d times, expected 1", len(g.dirs))
	}
	if d := g.dirs[0]; d != core.DirRight {
		t.Errorf("frame direction = %v, expected right", d)
	}
	if m.State().Score != 1 {
		t.Errorf("State().Score = %d, expected 1", m.State().Score)
	}

	update(t, m, TickMsg{})
	if d := g.dirs[1]; d != core.DirNone {
		t.Errorf("second frame direction = %v, expected none after clear", d)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&recordingGame{}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, nil)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, nil)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("game reset %d times, expected only the initial reset", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	m := NewModel(&recordingGame{}, core.RuntimeConfig{ScreenW: 120, ScreenH: 10, Seed: 1}, nil)

	out := m.View()
	if !strings.Contains(out, "board") {
		t.Error("view should contain the rendered game")
	}
	if !strings.Contains(out, "quit") {
		t.Error("view should contain the help line")
	}
	if n := strings.Count(out, "\n") + 1; n != 10 {
		t.Errorf("view has %d lines, expected 10", n)
	}
}
