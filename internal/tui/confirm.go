package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View(st styleSet) string {
	content := m.message + "\n\ny yes    n no"
	return st.overlayBox.Render(content)
}
