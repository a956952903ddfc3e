package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

const (
	boardScores = 50 // best scores loaded per game
	boardRuns   = 50 // sessions loaded per game
)

// ScoreSource is the read side of score persistence used by the scoreboard
// and the menu. storage.Store and storage.Memory both satisfy it.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	RecentSessions(gameID string, limit int) ([]storage.Session, error)
}

// boardView selects what the scoreboard table lists.
type boardView int

const (
	viewBest boardView = iota // best scores, highest first
	viewRuns                  // finished sessions, most recent first
)

// boardResult is what a key press did to the scoreboard.
type boardResult int

const (
	boardOpen boardResult = iota
	boardClosed
	boardQuit
)

type boardKeys struct {
	Prev   key.Binding
	Next   key.Binding
	Toggle key.Binding
	Scroll key.Binding
	Close  key.Binding
	Quit   key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.Scroll, k.Close}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Quit}}
}

var defaultBoardKeys = boardKeys{
	Prev:   key.NewBinding(key.WithKeys("left", "h", "a"), key.WithHelp("←", "prev game")),
	Next:   key.NewBinding(key.WithKeys("right", "l", "d"), key.WithHelp("→", "next game")),
	Toggle: key.NewBinding(key.WithKeys("v", " "), key.WithHelp("v", "best/runs")),
	Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "scroll")),
	Close:  key.NewBinding(key.WithKeys("esc", "b", "tab"), key.WithHelp("esc", "close")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// boardGame is one game tab with its loaded records.
type boardGame struct {
	registry.GameInfo
	maxStage int
	scores   []storage.ScoreEntry
	runs     []storage.Session
}

// scoreboard lists best scores and recorded runs per game. It is drawn
// in place of the menu while open.
type scoreboard struct {
	src    ScoreSource
	games  []boardGame
	cursor int
	view   boardView
	table  table.Model
	help   help.Model
	keys   boardKeys
	width  int
	height int
}

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00f2ff"))
	boardTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0a0a0a")).
				Background(lipgloss.Color("#ccff00")).Padding(0, 1)
	boardStatStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00f2ff")).Padding(0, 1)
	boardHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newScoreboard(src ScoreSource, width, height int) *scoreboard {
	b := &scoreboard{
		src:    src,
		keys:   defaultBoardKeys,
		help:   help.New(),
		width:  width,
		height: height,
	}
	for _, info := range registry.List() {
		g := boardGame{GameInfo: info, maxStage: 1}
		if game, err := registry.Create(info.ID); err == nil {
			g.maxStage = game.MaxStage()
		}
		b.games = append(b.games, g)
	}
	b.help.Width = width
	b.load()
	return b
}

// load refreshes the records of the selected game and rebuilds the table.
func (b *scoreboard) load() {
	if len(b.games) == 0 {
		b.rebuild()
		return
	}
	g := &b.games[b.cursor]
	g.scores, g.runs = nil, nil
	if b.src != nil {
		if scores, err := b.src.TopScores(g.ID, boardScores); err == nil {
			g.scores = scores
		}
		if runs, err := b.src.RecentSessions(g.ID, boardRuns); err == nil {
			g.runs = runs
		}
	}
	b.rebuild()
}

func (b *scoreboard) rebuild() {
	columns, rows := b.bestTable()
	if b.view == viewRuns {
		columns, rows = b.runsTable()
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(b.height-12, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#0a0a0a")).
		Background(lipgloss.Color("#00f2ff")).
		Bold(false)
	t.SetStyles(s)
	b.table = t
}

func (b *scoreboard) bestTable() ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 14},
	}
	if len(b.games) == 0 {
		return columns, nil
	}
	scores := b.games[b.cursor].scores
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%06d", s.Score),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return columns, rows
}

func (b *scoreboard) runsTable() ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "Ended", Width: 14},
		{Title: "Score", Width: 8},
		{Title: "Stage", Width: 7},
		{Title: "Result", Width: 8},
		{Title: "Time", Width: 8},
	}
	if len(b.games) == 0 {
		return columns, nil
	}
	g := b.games[b.cursor]
	rows := make([]table.Row, len(g.runs))
	for i, r := range g.runs {
		result := "FAILED"
		if r.Won {
			result = "CLEARED"
		}
		rows[i] = table.Row{
			r.EndedAt.Local().Format("Jan 02 15:04"),
			fmt.Sprintf("%06d", r.Score),
			fmt.Sprintf("%d/%d", r.Stage, g.maxStage),
			result,
			r.Duration().Round(time.Second).String(),
		}
	}
	return columns, rows
}

// handleKey applies a key press and reports whether the board stays open.
func (b *scoreboard) handleKey(msg tea.KeyMsg) boardResult {
	switch {
	case key.Matches(msg, b.keys.Quit):
		return boardQuit
	case key.Matches(msg, b.keys.Close):
		return boardClosed
	case key.Matches(msg, b.keys.Next):
		b.step(1)
	case key.Matches(msg, b.keys.Prev):
		b.step(-1)
	case key.Matches(msg, b.keys.Toggle):
		b.view = 1 - b.view
		b.rebuild()
	default:
		b.table, _ = b.table.Update(msg)
	}
	return boardOpen
}

func (b *scoreboard) step(delta int) {
	if len(b.games) == 0 {
		return
	}
	b.cursor = (b.cursor + delta + len(b.games)) % len(b.games)
	b.load()
}

func (b *scoreboard) resize(width, height int) {
	b.width, b.height = width, height
	b.help.Width = width
	b.rebuild()
}

// stats summarizes the loaded runs of the selected game.
func (b *scoreboard) stats() string {
	g := b.games[b.cursor]
	best, clears, longest := 0, 0, time.Duration(0)
	if len(g.scores) > 0 {
		best = g.scores[0].Score
	}
	for _, r := range g.runs {
		if r.Won {
			clears++
		}
		longest = max(longest, r.Duration())
	}
	return fmt.Sprintf("BEST %06d   RUNS %d   CLEARS %d   LONGEST %s",
		best, len(g.runs), clears, longest.Round(time.Second))
}

func (b *scoreboard) render() string {
	var sb strings.Builder

	title := "HALL OF FAME"
	if b.view == viewRuns {
		title = "RUN LOG"
	}
	sb.WriteString(boardTitleStyle.Render(title))
	sb.WriteString("\n\n")

	if len(b.games) == 0 {
		sb.WriteString(boardEmptyStyle.Render("No games registered"))
		return lipgloss.Place(b.width, b.height, lipgloss.Center, lipgloss.Center, sb.String())
	}

	tabs := make([]string, len(b.games))
	for i, g := range b.games {
		if i == b.cursor {
			tabs[i] = boardActiveStyle.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	sb.WriteString("\n\n")
	sb.WriteString(boardStatStyle.Render(b.stats()))
	sb.WriteString("\n\n")

	if len(b.table.Rows()) == 0 {
		msg := "No scores recorded yet."
		if b.view == viewRuns {
			msg = "No runs recorded yet."
		}
		sb.WriteString(boardFrameStyle.Render(boardEmptyStyle.Render(msg)))
	} else {
		sb.WriteString(boardFrameStyle.Render(b.table.View()))
	}
	sb.WriteString("\n\n")
	sb.WriteString(boardHelpStyle.Render(b.help.View(b.keys)))

	return lipgloss.Place(b.width, b.height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(sb.String()))
}
