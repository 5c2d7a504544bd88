package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	repeat := textinput.New()
	repeat.Placeholder = "repeat password"
	repeat.CharLimit = 256
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{email, password, repeat}}
}

func (m registerModel) View(st styleSet) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Create account"))
	b.WriteString("\n\n")
	b.WriteString("Email           [" + m.inputs[0].View() + "]\n")
	b.WriteString("Password        [" + m.inputs[1].View() + "]\n")
	b.WriteString("Repeat password [" + m.inputs[2].View() + "]\n")

	if m.submitting {
		b.WriteString("\nCreating account...\n")
	}

	b.WriteString("\n" + st.help.Render("enter submit  tab next field  esc back  ctrl+c quit"))
	return b.String()
}
