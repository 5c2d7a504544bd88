package models

// Confidence is the review outcome recorded against a single flashcard.
// The client uses a three-level scale, matching the three review buttons:
// the value doubles as the fraction persisted with the card.
type Confidence float64

const (
	// ConfidenceLow means the user did not know the card at all.
	ConfidenceLow Confidence = 0
	// ConfidenceMedium means the user half-remembered the card.
	ConfidenceMedium Confidence = 0.5
	// ConfidenceHigh means the user knew the card.
	ConfidenceHigh Confidence = 1
)

// Flashcard is a single front/back card inside a deck.
type Flashcard struct {
	// Front is the prompt side of the card.
	Front string `json:"front"`

	// Back is the answer side of the card.
	Back string `json:"back"`

	// Confidence is the outcome of the most recent review pass, or nil if
	// the card has never been answered.
	Confidence *Confidence `json:"confidence,omitempty"`
}

// EditedFlashcard is a Flashcard carrying edit-session metadata. The flags
// are hints for the sync payload and are not guaranteed mutually exclusive.
// A card with Deleted set is absent from the user-visible sequence but stays
// physically present in the array until the deck has been pushed to the
// server, so that storage indices remain stable during an edit session.
type EditedFlashcard struct {
	Flashcard

	// Edited marks a card whose front or back text was changed locally.
	Edited bool `json:"edited,omitempty"`

	// Created marks a card inserted locally and not yet known to the server.
	Created bool `json:"created,omitempty"`

	// Deleted marks a card removed locally but not yet deleted server-side.
	Deleted bool `json:"deleted,omitempty"`
}

// Deck is a named, ordered collection of flashcards. ID is the server-issued
// surrogate key and is the only value used to address a deck, in storage and
// on the wire; Name is display text.
type Deck struct {
	ID    int64             `json:"id"`
	Name  string            `json:"name"`
	Cards []EditedFlashcard `json:"cards"`
}

// VisibleCards returns the cards not marked deleted, in order.
func (d Deck) VisibleCards() []EditedFlashcard {
	out := make([]EditedFlashcard, 0, len(d.Cards))
	for _, c := range d.Cards {
		if !c.Deleted {
			out = append(out, c)
		}
	}
	return out
}

// VisibleCount returns the number of cards not marked deleted.
func (d Deck) VisibleCount() int {
	n := 0
	for _, c := range d.Cards {
		if !c.Deleted {
			n++
		}
	}
	return n
}
