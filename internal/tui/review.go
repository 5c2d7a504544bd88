package tui

import (
	"strings"

	"github.com/hwalton/snapcram/internal/service"
)

type reviewModel struct {
	session  *service.ReviewSession
	deckID   int64
	deckName string
	status   string
}

func newReviewModel(deckID int64, name string, session *service.ReviewSession) reviewModel {
	return reviewModel{session: session, deckID: deckID, deckName: name}
}

// visibleSide returns the text the user is currently looking at.
func (m reviewModel) visibleSide() (string, bool) {
	card, _, ok := m.session.Current()
	if !ok {
		return "", false
	}
	if m.session.Flipped() {
		return card.Back, true
	}
	return card.Front, true
}

func (m reviewModel) View(st styleSet) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Review: " + m.deckName))
	b.WriteString("  " + st.help.Render(m.session.Progress()))
	b.WriteString("\n\n")

	switch {
	case m.session.Empty():
		b.WriteString("This deck has no cards to review.\n")
		b.WriteString("\n" + st.help.Render("esc back"))
	case m.session.Done():
		b.WriteString("Deck complete. Nice work!\n")
		b.WriteString("\n" + st.help.Render("r start over  esc back"))
	default:
		text, _ := m.visibleSide()
		side := "front"
		if m.session.Flipped() {
			side = "back"
		}
		b.WriteString(st.cardBox.Render(text))
		b.WriteString("\n" + st.help.Render(side) + "\n")
		if m.session.Flipped() {
			b.WriteString("\nHow well did you know it?  1 not at all  2 somewhat  3 well\n")
		}
		if m.status != "" {
			b.WriteString("\n" + m.status + "\n")
		}
		b.WriteString("\n" + st.help.Render("f/space flip  c copy  esc back"))
	}

	return b.String()
}
