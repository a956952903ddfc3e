package tui

import (
	"fmt"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/host"
)

type overlayLine struct {
	text  string
	color core.Color
}

// drawOverlay paints the shell panel for the current phase over the game
// frame. PLAYING without pause draws nothing.
func drawOverlay(dst *core.Screen, st host.Status) {
	var lines []overlayLine
	add := func(text string, c core.Color) {
		lines = append(lines, overlayLine{text, c})
	}

	switch st.Phase {
	case host.PhaseStart:
		add(st.Title, core.ColorNeonCyan)
		add("", core.ColorDefault)
		if st.Stage > 1 {
			add(fmt.Sprintf("RESUMING FROM STAGE %d", st.Stage), core.ColorLime)
		} else {
			add("STAGE 1", core.ColorLime)
		}
		add(fmt.Sprintf("HIGH SCORE %06d", st.HighScore), core.ColorGray)
		add("", core.ColorDefault)
		add("ENTER / CLICK TO START", core.ColorBrightWhite)
	case host.PhasePlaying:
		if !st.Paused {
			return
		}
		add("PAUSED", core.ColorLime)
		add("", core.ColorDefault)
		add("P RESUME   ESC MENU", core.ColorGray)
	case host.PhaseStageClear:
		add(fmt.Sprintf("STAGE %d COMPLETE", st.Stage), core.ColorLime)
		add(fmt.Sprintf("SCORE %06d", st.Display.Score), core.ColorBrightWhite)
		add("", core.ColorDefault)
		add("ENTER NEXT STAGE", core.ColorNeonCyan)
	case host.PhaseGameOver:
		if st.Won {
			add("ALL STAGES CLEARED", core.ColorLime)
		} else {
			add("SYSTEM FAILURE", core.ColorHotPink)
		}
		add(fmt.Sprintf("SCORE %06d", st.LastScore), core.ColorBrightWhite)
		if st.LastScore > 0 && st.LastScore >= st.HighScore {
			add("NEW HIGH SCORE", core.ColorLime)
		} else {
			add(fmt.Sprintf("BEST %06d", st.HighScore), core.ColorGray)
		}
		add("", core.ColorDefault)
		add("R REBOOT   ESC MENU", core.ColorNeonCyan)
	default:
		return
	}

	drawPanel(dst, lines)
}

// drawPanel draws a bordered, blanked box with centered lines in the middle
// of the screen.
func drawPanel(dst *core.Screen, lines []overlayLine) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	w := min(width+6, dst.Width())
	h := min(len(lines)+4, dst.Height())
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	for y := r.Y; y < r.Bottom(); y++ {
		dst.DrawHLine(r.X, y, r.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(r, core.ColorNeonCyan)

	for i, l := range lines {
		if l.text == "" {
			continue
		}
		x := r.X + (r.W-len([]rune(l.text)))/2
		dst.DrawTextColor(x, r.Y+2+i, l.text, l.color)
	}
}
