package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/hwalton/snapcram/internal/service"
)

type createStage int

const (
	stageForm createStage = iota
	stageUploading
	stageGenerating
	stageError
)

// createDeckModel keeps the form inputs across the whole creation flow, so
// that a failed attempt can be retried without retyping anything.
type createDeckModel struct {
	stage   createStage
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	errText string

	// pending is the form being processed by the upload and generate
	// stages; kept so a failed attempt can be retried as-is.
	pending service.CreateDeckForm
}

func newCreateDeckModel() createDeckModel {
	name := textinput.New()
	name.Placeholder = "deck name"
	name.CharLimit = 80
	name.Width = 40
	name.Focus()

	numCards := textinput.New()
	numCards.Placeholder = "10"
	numCards.CharLimit = 2
	numCards.Width = 40

	prompt := textinput.New()
	prompt.Placeholder = "optional guidance for the generator"
	prompt.CharLimit = 500
	prompt.Width = 40

	images := textinput.New()
	images.Placeholder = "notes1.png, notes2.jpg"
	images.CharLimit = 1024
	images.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return createDeckModel{
		inputs:  []textinput.Model{name, numCards, prompt, images},
		spinner: s,
	}
}

// form assembles the inputs into a creation request. Only the card count
// needs parsing here; everything else is validated downstream.
func (m createDeckModel) form() (service.CreateDeckForm, error) {
	numCards, err := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
	if err != nil {
		return service.CreateDeckForm{}, fmt.Errorf("number of cards must be a whole number")
	}

	var paths []string
	for _, p := range strings.Split(m.inputs[3].Value(), ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}

	return service.CreateDeckForm{
		Name:       strings.TrimSpace(m.inputs[0].Value()),
		NumCards:   numCards,
		Prompt:     strings.TrimSpace(m.inputs[2].Value()),
		ImagePaths: paths,
	}, nil
}

func (m createDeckModel) View(st styleSet) string {
	var b strings.Builder
	b.WriteString(st.title.Render("New deck"))
	b.WriteString("\n\n")

	switch m.stage {
	case stageUploading:
		b.WriteString(m.spinner.View() + " Uploading images...\n")
		b.WriteString("\n" + st.help.Render("ctrl+c quit"))
	case stageGenerating:
		b.WriteString(m.spinner.View() + " Generating flashcards...\n")
		b.WriteString("\n" + st.help.Render("ctrl+c quit"))
	case stageError:
		b.WriteString(st.errorText.Render("Could not create the deck") + "\n\n")
		b.WriteString(m.errText + "\n")
		b.WriteString("\n" + st.help.Render("r retry  esc back"))
	default:
		b.WriteString("Name           [" + m.inputs[0].View() + "]\n")
		b.WriteString("Cards (1-20)   [" + m.inputs[1].View() + "]\n")
		b.WriteString("Prompt         [" + m.inputs[2].View() + "]\n")
		b.WriteString("Image paths    [" + m.inputs[3].View() + "]\n")
		if m.errText != "" {
			b.WriteString("\n" + st.errorText.Render(m.errText) + "\n")
		}
		b.WriteString("\n" + st.help.Render("enter create  tab next field  esc back"))
	}

	return b.String()
}
