package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View(st styleSet) string {
	content := st.errorText.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close"
	return st.overlayBox.Render(content)
}
