package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/hwalton/snapcram/internal/service"
)

type editModel struct {
	session  *service.EditSession
	deckName string
	areas    []textarea.Model
	focus    int
	saving   bool
}

func newEditModel(name string, session *service.EditSession) editModel {
	front := textarea.New()
	front.Placeholder = "front"
	front.ShowLineNumbers = false
	front.SetWidth(60)
	front.SetHeight(4)

	back := textarea.New()
	back.Placeholder = "back"
	back.ShowLineNumbers = false
	back.SetWidth(60)
	back.SetHeight(4)

	m := editModel{session: session, deckName: name, areas: []textarea.Model{front, back}}
	m.loadCurrent()
	return m
}

// loadCurrent copies the session's current card into the inputs.
func (m *editModel) loadCurrent() {
	card, _, ok := m.session.Current()
	if !ok {
		m.areas[0].SetValue("")
		m.areas[1].SetValue("")
		return
	}
	m.areas[0].SetValue(card.Front)
	m.areas[1].SetValue(card.Back)
	m.focus = 0
	m.areas[0].Focus()
	m.areas[1].Blur()
}

// flushCurrent writes the input contents back into the session if they
// changed. Called before any navigation away from the card.
func (m *editModel) flushCurrent() {
	card, _, ok := m.session.Current()
	if !ok {
		return
	}
	front, back := m.areas[0].Value(), m.areas[1].Value()
	if front != card.Front || back != card.Back {
		m.session.Edit(front, back)
	}
}

func (m *editModel) toggleFocus() {
	m.areas[m.focus].Blur()
	m.focus = 1 - m.focus
	m.areas[m.focus].Focus()
}

func (m editModel) View(st styleSet) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Edit: " + m.deckName))
	b.WriteString("  " + st.help.Render(m.session.Progress()))
	b.WriteString("\n\n")

	if m.saving {
		b.WriteString("Saving...\n")
		return b.String()
	}

	if m.session.Empty() {
		b.WriteString("No cards left. Press ctrl+a to add one.\n")
		b.WriteString("\n" + st.help.Render("ctrl+a add card  esc save & back"))
		return b.String()
	}

	b.WriteString("Front\n" + m.areas[0].View() + "\n\n")
	b.WriteString("Back\n" + m.areas[1].View() + "\n")
	b.WriteString("\n" + st.help.Render("tab switch side  ctrl+p/ctrl+n prev/next  ctrl+a add  ctrl+d remove  esc save & back"))
	return b.String()
}
