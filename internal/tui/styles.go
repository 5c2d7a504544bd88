package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hwalton/snapcram/models"
)

type styleSet struct {
	app        lipgloss.Style
	title      lipgloss.Style
	help       lipgloss.Style
	errorText  lipgloss.Style
	stale      lipgloss.Style
	overlayBox lipgloss.Style
	cardBox    lipgloss.Style
}

func stylesFor(theme models.Theme) styleSet {
	accent := lipgloss.Color("92")
	warn := lipgloss.Color("130")
	fail := lipgloss.Color("124")
	if theme == models.ThemeDark {
		accent = lipgloss.Color("212")
		warn = lipgloss.Color("214")
		fail = lipgloss.Color("203")
	}

	return styleSet{
		app:        lipgloss.NewStyle().Padding(1, 2),
		title:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		help:       lipgloss.NewStyle().Faint(true),
		errorText:  lipgloss.NewStyle().Bold(true).Foreground(fail),
		stale:      lipgloss.NewStyle().Foreground(warn),
		overlayBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		cardBox:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 3).Width(60),
	}
}
