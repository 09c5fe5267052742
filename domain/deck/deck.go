package deck

import (
	"errors"
	"fmt"
)

// Size is the number of cards in a standard deck.
const Size = 52

// ErrDeckExhausted is returned when a card is requested from an empty deck.
// A single round never gets close to 52 cards, so hitting it means a broken invariant.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is an ordered pile of cards. The top of the deck is the end of the slice.
type Deck struct {
	cards []Card
}

// New returns the 52 standard cards in suit-major order: Hearts, Diamonds,
// Clubs, Spades, each from Two to Ace.
func New() *Deck {
	cards := make([]Card, 0, Size)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{rank: r, suit: s})
		}
	}
	return &Deck{cards: cards}
}

// FromCards builds a deck with exactly the given cards. The last card is the top.
func FromCards(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Shuffle permutes the deck in place using s.
func (d *Deck) Shuffle(s Shuffler) {
	s.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, fmt.Errorf("draw from empty deck: %w", ErrDeckExhausted)
	}
	c := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return c, nil
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
