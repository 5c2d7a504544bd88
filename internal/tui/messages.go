package tui

import (
	"github.com/hwalton/snapcram/models"
)

type authDoneMsg struct {
	err error
}

// decksLoadedMsg carries the generation counter of the request that produced
// it; responses from a superseded load are dropped.
type decksLoadedMsg struct {
	gen   int
	decks []models.Deck
	stale bool
	err   error
}

type imagesUploadedMsg struct {
	fileIDs []string
	err     error
}

type deckCreatedMsg struct {
	deck models.Deck
	err  error
}

type deckDeletedMsg struct {
	err error
}

type answerRecordedMsg struct {
	err error
}

type editsSavedMsg struct {
	err error
}

type themeSavedMsg struct {
	theme models.Theme
	err   error
}

type loggedOutMsg struct {
	err error
}

type accountDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
