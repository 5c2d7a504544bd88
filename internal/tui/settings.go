package tui

import (
	"strings"

	"github.com/hwalton/snapcram/models"
)

type settingsModel struct {
	theme  models.Theme
	info   models.AppBuildInfo
	status string
}

func (m settingsModel) View(st styleSet) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString("Theme: " + string(m.theme) + "\n")
	if m.info.Version != "" {
		b.WriteString("Version: " + m.info.Version + "\n")
	}
	if m.info.SupportEmail != "" {
		b.WriteString("Support: " + m.info.SupportEmail + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + st.help.Render("t toggle theme  l log out  x delete account  esc back"))
	return b.String()
}
