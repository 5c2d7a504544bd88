package service

import (
	"fmt"

	"github.com/hwalton/snapcram/models"
)

// EditSession is the in-memory working copy of a deck being edited. Cards
// are addressed by two distinct indices: the storage index into the full
// backing array (which holds deleted cards until a save reconciles them)
// and the 1-based display position among visible cards only. Removal only
// flags a card; the backing array never shrinks before a successful save.
//
// The session does not talk to the network. The caller pushes Cards()
// through [DeckService.SaveEdits] exactly once when leaving the screen.
type EditSession struct {
	deckID int64
	cards  []models.EditedFlashcard
	pos    int // storage index of the current card, -1 when no card is visible
}

// NewEditSession copies deck's cards into a working array and points at the
// first visible card.
func NewEditSession(deck models.Deck) *EditSession {
	s := &EditSession{
		deckID: deck.ID,
		cards:  make([]models.EditedFlashcard, len(deck.Cards)),
	}
	copy(s.cards, deck.Cards)
	s.pos = s.nextVisible(-1)
	return s
}

// nextVisible returns the first non-deleted storage index strictly after
// from, or -1.
func (s *EditSession) nextVisible(from int) int {
	for i := from + 1; i < len(s.cards); i++ {
		if !s.cards[i].Deleted {
			return i
		}
	}
	return -1
}

// prevVisible returns the last non-deleted storage index strictly before
// from, or -1.
func (s *EditSession) prevVisible(from int) int {
	for i := from - 1; i >= 0; i-- {
		if !s.cards[i].Deleted {
			return i
		}
	}
	return -1
}

// DeckID returns the id of the deck under edit.
func (s *EditSession) DeckID() int64 {
	return s.deckID
}

// Empty reports whether no card is currently visible.
func (s *EditSession) Empty() bool {
	return s.pos < 0
}

// Current returns the card under the pointer and its storage index.
func (s *EditSession) Current() (card models.EditedFlashcard, storageIndex int, ok bool) {
	if s.pos < 0 {
		return models.EditedFlashcard{}, 0, false
	}
	return s.cards[s.pos], s.pos, true
}

// CanPrev reports whether a visible card exists before the pointer.
func (s *EditSession) CanPrev() bool {
	return s.pos >= 0 && s.prevVisible(s.pos) != -1
}

// CanNext reports whether a visible card exists after the pointer.
func (s *EditSession) CanNext() bool {
	return s.pos >= 0 && s.nextVisible(s.pos) != -1
}

// Next moves the pointer one visible card forward (or backward when forward
// is false), staying put at either edge.
func (s *EditSession) Next(forward bool) {
	if s.pos < 0 {
		return
	}

	var next int
	if forward {
		next = s.nextVisible(s.pos)
	} else {
		next = s.prevVisible(s.pos)
	}
	if next != -1 {
		s.pos = next
	}
}

// Edit overwrites both sides of the current card and flags it edited. Blank
// text is permitted; clearing a side is a legitimate edit.
func (s *EditSession) Edit(front, back string) {
	if s.pos < 0 {
		return
	}

	s.cards[s.pos].Front = front
	s.cards[s.pos].Back = back
	s.cards[s.pos].Edited = true
}

// Insert splices a blank created card directly after the current one and
// moves the pointer to it. On an empty session, or with the pointer at the
// last card, the card is appended.
func (s *EditSession) Insert() {
	card := models.EditedFlashcard{Created: true}

	if s.pos < 0 || s.pos == len(s.cards)-1 {
		s.cards = append(s.cards, card)
		s.pos = len(s.cards) - 1
		return
	}

	at := s.pos + 1
	s.cards = append(s.cards[:at], append([]models.EditedFlashcard{card}, s.cards[at:]...)...)
	s.pos = at
}

// Remove flags the current card deleted. The pointer falls back to the
// previous visible card, except when the first visible card is removed, in
// which case it moves forward to the next one. Removing the last visible
// card leaves the session empty.
func (s *EditSession) Remove() {
	if s.pos < 0 {
		return
	}

	first := s.prevVisible(s.pos) == -1
	s.cards[s.pos].Deleted = true

	if first {
		s.pos = s.nextVisible(s.pos)
	} else {
		s.pos = s.prevVisible(s.pos)
	}
}

// Cards returns the full backing array, flags and deleted cards included,
// ready for [DeckService.SaveEdits].
func (s *EditSession) Cards() []models.EditedFlashcard {
	return s.cards
}

// Dirty reports whether any card carries an unsaved flag.
func (s *EditSession) Dirty() bool {
	for _, card := range s.cards {
		if card.Edited || card.Created || card.Deleted {
			return true
		}
	}
	return false
}

// VisibleCount returns the number of non-deleted cards.
func (s *EditSession) VisibleCount() int {
	n := 0
	for _, card := range s.cards {
		if !card.Deleted {
			n++
		}
	}
	return n
}

// Progress renders the 1-based display position over the visible count,
// e.g. "2 / 8". Deleted cards are invisible to both numbers.
func (s *EditSession) Progress() string {
	if s.pos < 0 {
		return fmt.Sprintf("0 / %d", s.VisibleCount())
	}

	display := 0
	for i := 0; i <= s.pos; i++ {
		if !s.cards[i].Deleted {
			display++
		}
	}
	return fmt.Sprintf("%d / %d", display, s.VisibleCount())
}
