package tui

type networkIssueModel struct{}

func (m networkIssueModel) View(st styleSet) string {
	out := st.title.Render("Snapcram") + "\n\n"
	out += "The server cannot be reached right now.\n"
	out += "Your saved decks are safe and you will stay logged in.\n"
	out += "\n" + st.help.Render("r retry  q quit")
	return out
}
