package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
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

	return loginModel{inputs: []textinput.Model{email, password}}
}

func (m loginModel) View(st styleSet) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Log in"))
	b.WriteString("\n\n")
	b.WriteString("Email    [" + m.inputs[0].View() + "]\n")
	b.WriteString("Password [" + m.inputs[1].View() + "]\n")

	if m.submitting {
		b.WriteString("\nLogging in...\n")
	}

	b.WriteString("\n" + st.help.Render("enter submit  tab next field  esc back  ctrl+c quit"))
	return b.String()
}
