package service

import (
	"fmt"

	"github.com/hwalton/snapcram/models"
)

// ReviewSession drives one practice pass through a deck. It is purely
// in-memory: confidence outcomes are handed back as storage indices for the
// caller to persist via [DeckService.RecordAnswer], and abandoning the
// session loses no data.
//
// Cards flagged deleted by an unsynced edit are skipped. The pointer always
// sits on a visible card while the session is running; after the last
// answer the session is done until Restart.
type ReviewSession struct {
	deck    models.Deck
	visible []int // storage indices of the cards in play
	pos     int   // position within visible
	flipped bool
	done    bool
}

// NewReviewSession starts a pass over deck from its first visible card,
// front side showing. A deck with no visible cards starts done.
func NewReviewSession(deck models.Deck) *ReviewSession {
	s := &ReviewSession{deck: deck}
	for i, card := range deck.Cards {
		if !card.Deleted {
			s.visible = append(s.visible, i)
		}
	}
	s.done = len(s.visible) == 0
	return s
}

// Empty reports whether the deck has no cards to review at all.
func (s *ReviewSession) Empty() bool {
	return len(s.visible) == 0
}

// Done reports whether every visible card has been answered this pass.
func (s *ReviewSession) Done() bool {
	return s.done
}

// Current returns the card under the pointer and its storage index.
// ok is false when the session is done or the deck is empty.
func (s *ReviewSession) Current() (card models.Flashcard, storageIndex int, ok bool) {
	if s.done {
		return models.Flashcard{}, 0, false
	}
	idx := s.visible[s.pos]
	return s.deck.Cards[idx].Flashcard, idx, true
}

// Flipped reports which side of the current card is showing.
func (s *ReviewSession) Flipped() bool {
	return s.flipped
}

// Flip turns the current card over. Flip state is orthogonal to progress:
// answering is allowed from either side.
func (s *ReviewSession) Flip() {
	if !s.done {
		s.flipped = !s.flipped
	}
}

// Answer records confidence against the current card and advances. The next
// card is shown front first. The storage index of the answered card is
// returned so the caller can persist the outcome; after the last visible
// card the session transitions to done.
func (s *ReviewSession) Answer(confidence models.Confidence) (storageIndex int, ok bool) {
	if s.done {
		return 0, false
	}

	answered := s.visible[s.pos]
	s.flipped = false

	if s.pos+1 < len(s.visible) {
		s.pos++
	} else {
		s.done = true
	}

	return answered, true
}

// Restart begins a fresh pass from the first visible card, front showing.
func (s *ReviewSession) Restart() {
	s.pos = 0
	s.flipped = false
	s.done = len(s.visible) == 0
}

// Progress renders the 1-based position over the visible card count, e.g.
// "3 / 12".
func (s *ReviewSession) Progress() string {
	if len(s.visible) == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", s.pos+1, len(s.visible))
}
