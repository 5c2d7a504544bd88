package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/hwalton/snapcram/models"
)

type deckListModel struct {
	decks      []models.Deck
	idx        int
	loading    bool
	refreshing bool
	stale      bool
	spinner    spinner.Model
	status     string
}

func newDeckListModel() deckListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return deckListModel{spinner: s, loading: true}
}

func (m deckListModel) current() (models.Deck, bool) {
	if len(m.decks) == 0 || m.idx < 0 || m.idx >= len(m.decks) {
		return models.Deck{}, false
	}
	return m.decks[m.idx], true
}

func (m deckListModel) View(st styleSet) string {
	header := st.title.Render("Snapcram")
	if m.refreshing {
		header += "  " + m.spinner.View()
	}
	if m.stale {
		header += "  " + st.stale.Render("offline copy")
	}
	out := header + "\n\n"

	switch {
	case m.loading:
		out += "Loading...\n"
	case len(m.decks) == 0:
		out += "No decks yet. Press n to create one.\n"
	default:
		for i, deck := range m.decks {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s (%d cards)\n", cursor, deck.Name, deck.VisibleCount())
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + st.help.Render("enter review  n new  e edit  d delete  r refresh  s settings  q quit")
	return out
}
