package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
	_ "github.com/vovakirdan/neon-arcade/internal/games/neonstrike"
	_ "github.com/vovakirdan/neon-arcade/internal/games/voidrunner"
	"github.com/vovakirdan/neon-arcade/internal/host"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (*Model, *host.Host, *storage.Memory) {
	t.Helper()
	store := storage.NewMemory()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	h := host.New(host.Options{Runtime: cfg, Store: store})
	return NewModel(h, store, cfg), h, store
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runes("w"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runes("a"), core.ActionLeft},
		{runes("d"), core.ActionRight},
		{runes("z"), core.ActionAimLeft},
		{runes("x"), core.ActionAimRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack},
		{runes("p"), core.ActionPause},
		{runes("r"), core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionScoreboard},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("m"), core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestIsHoldable(t *testing.T) {
	if !IsHoldable(core.ActionLeft) || !IsHoldable(core.ActionFire) {
		t.Error("directions and fire should be holdable")
	}
	if IsHoldable(core.ActionPause) || IsHoldable(core.ActionConfirm) {
		t.Error("shell actions should be one-shot")
	}
}

func TestModelMenuToPlaying(t *testing.T) {
	m, h, _ := newTestModel(t)

	if h.Phase() != host.PhaseSelect {
		t.Fatalf("initial phase = %s", h.Phase())
	}
	view := m.View()
	if !strings.Contains(view, "Neon Strike") || !strings.Contains(view, "Void Runner") {
		t.Errorf("menu should list both games:\n%s", view)
	}

	send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if h.Phase() != host.PhaseStart || h.Status().GameID != "voidrunner" {
		t.Fatalf("after select: phase %s game %q", h.Phase(), h.Status().GameID)
	}
	if !strings.Contains(m.View(), "ENTER / CLICK TO START") {
		t.Error("start panel missing")
	}

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if h.Phase() != host.PhasePlaying {
		t.Fatalf("after confirm: phase %s", h.Phase())
	}

	start := time.Now()
	for i := 1; i <= 120; i++ {
		send(m, TickMsg(start.Add(time.Duration(i)*16*time.Millisecond)))
	}
	if h.Status().Display.Survival < 1 {
		t.Errorf("survival = %d after ~2s of ticks", h.Status().Display.Survival)
	}

	send(m, runes("p"))
	if !h.Status().Paused {
		t.Error("p should pause")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("pause panel missing")
	}

	send(m, tea.KeyMsg{Type: tea.KeyEscape})
	if h.Phase() != host.PhaseSelect || h.Game() != nil {
		t.Errorf("esc should return to the menu, phase %s", h.Phase())
	}
}

func TestModelHeldKeysReachGame(t *testing.T) {
	m, _, _ := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})

	send(m, runes("d"))
	m.handleTick(time.Now())
	if !m.input.IsHeld(core.ActionRight) {
		t.Error("pressed direction should be held on the next tick")
	}
	if len(m.input.Actions) != 0 {
		t.Error("one-shot actions should be cleared after a tick")
	}

	m.handleTick(time.Now().Add(time.Second))
	if m.input.IsHeld(core.ActionRight) {
		t.Error("held key should expire after the hold window")
	}
}

func TestModelReverseReleasesOpposite(t *testing.T) {
	m, _, _ := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})

	send(m, runes("a"), runes("d"))
	m.handleTick(time.Now())
	if m.input.IsHeld(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !m.input.IsHeld(core.ActionRight) {
		t.Error("right should be held")
	}

	send(m, runes("z"))
	m.handleTick(time.Now())
	if !m.input.IsHeld(core.ActionRight) || !m.input.IsHeld(core.ActionAimLeft) {
		t.Error("unrelated holds should combine")
	}
}

func TestModelMouse(t *testing.T) {
	m, h, _ := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	// A click on the start panel starts the game.
	send(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if h.Phase() != host.PhasePlaying {
		t.Fatalf("click should start, phase %s", h.Phase())
	}

	send(m, tea.MouseMsg{X: 40, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	p := m.input.Pointer
	if !p.Known || !p.Down || p.X != 40.5 || p.Y != 3.5 {
		t.Errorf("pointer = %+v", p)
	}
	if !m.input.Has(core.ActionFire) {
		t.Error("press while playing should fire")
	}

	send(m, tea.MouseMsg{X: 41, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	if m.input.Pointer.Down {
		t.Error("release should lift the pointer")
	}
}

func TestModelResize(t *testing.T) {
	m, _, _ := newTestModel(t)
	send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelScoreboard(t *testing.T) {
	m, _, store := newTestModel(t)
	store.SaveScore("neonstrike", 1230)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.SaveSession(storage.Session{
		ID: "run-1", GameID: "voidrunner", Score: 420, Stage: 5, Won: true,
		StartedAt: start, EndedAt: start.Add(95 * time.Second),
	})

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if view := m.View(); !strings.Contains(view, "001230") || !strings.Contains(view, "HALL OF FAME") {
		t.Error("scoreboard should list the saved score")
	}

	send(m, runes("v"))
	if view := m.View(); !strings.Contains(view, "RUN LOG") || !strings.Contains(view, "No runs recorded yet.") {
		t.Error("v should switch to the run log of the selected game")
	}

	send(m, tea.KeyMsg{Type: tea.KeyRight})
	view := m.View()
	for _, want := range []string{"5/5", "CLEARED", "1m35s", "CLEARS 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("run log missing %q", want)
		}
	}

	send(m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.scoreboard != nil {
		t.Error("esc should close the scoreboard")
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	cmd := send(m, runes("q"))
	if cmd == nil || !m.quitting {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestDrawOverlay(t *testing.T) {
	tests := []struct {
		name   string
		status host.Status
		want   []string
	}{
		{"start resumes", host.Status{Phase: host.PhaseStart, Title: "Void Runner", Stage: 3}, []string{"Void Runner", "RESUMING FROM STAGE 3"}},
		{"paused", host.Status{Phase: host.PhasePlaying, Paused: true}, []string{"PAUSED"}},
		{"stage clear", host.Status{Phase: host.PhaseStageClear, Stage: 2}, []string{"STAGE 2 COMPLETE"}},
		{"game over", host.Status{Phase: host.PhaseGameOver, LastScore: 40, HighScore: 90}, []string{"SYSTEM FAILURE", "SCORE 000040", "BEST 000090"}},
		{"victory", host.Status{Phase: host.PhaseGameOver, Won: true, LastScore: 900, HighScore: 900}, []string{"ALL STAGES CLEARED", "NEW HIGH SCORE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(80, 24)
			drawOverlay(s, tt.status)
			out := s.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("overlay missing %q:\n%s", w, out)
				}
			}
		})
	}

	s := core.NewScreen(80, 24)
	drawOverlay(s, host.Status{Phase: host.PhasePlaying})
	if strings.TrimSpace(s.String()) != "" {
		t.Error("running game should have no overlay")
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "NEON", core.ColorNeonCyan)
	s.DrawTextColor(5, 1, "RUN", core.ColorLime)

	out := RenderScreen(s)
	if !strings.Contains(out, "NEON") || !strings.Contains(out, "RUN") {
		t.Errorf("rendered screen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}
