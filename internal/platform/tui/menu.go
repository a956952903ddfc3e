package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
}

// menu is the game picker shown in the SELECT phase.
type menu struct {
	items  []MenuItem
	cursor int
}

func newMenu(scores ScoreSource) menu {
	games := registry.List()
	m := menu{items: make([]MenuItem, 0, len(games))}
	for _, g := range games {
		m.items = append(m.items, MenuItem{GameID: g.ID, Title: g.Title})
	}
	m.refresh(scores)
	return m
}

// refresh reloads the best score of every game.
func (m *menu) refresh(scores ScoreSource) {
	if scores == nil {
		return
	}
	for i := range m.items {
		top, err := scores.TopScores(m.items[i].GameID, 1)
		if err == nil && len(top) > 0 {
			m.items[i].HighScore = top[0].Score
		}
	}
}

func (m *menu) up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *menu) down() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
}

// selected returns the highlighted item, or nil for an empty menu.
func (m menu) selected() *MenuItem {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.cursor]
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00f2ff"))
	menuSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ccff00"))
)

// view renders the menu centered in a width x height area.
func (m menu) view(width, height int, helpLine string) string {
	var b strings.Builder

	b.WriteString(menuTitleStyle.Render("N E O N   A R C A D E"))
	b.WriteString("\n\n")
	b.WriteString(menuSubtitleStyle.Render("Select a game"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-14s  HI %06d", item.Title, item.HighScore)
		if i == m.cursor {
			b.WriteString(menuSelectedStyle.Render("> " + line[2:]))
		} else {
			b.WriteString(menuItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if len(m.items) == 0 {
		b.WriteString(menuSubtitleStyle.Render("No games registered"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpLine)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String()))
}
