package blackjack

import (
	"strings"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

const (
	// BustLimit is the highest total that is not a bust.
	BustLimit = 21
	// DealerStandsOn is the total at which the dealer stops drawing.
	DealerStandsOn = 17
)

// Hand is the append-only list of cards held by the player or the dealer.
type Hand struct {
	cards []deck.Card
}

func NewHand(cards ...deck.Card) *Hand {
	h := &Hand{cards: make([]deck.Card, 0, len(cards)+3)}
	h.cards = append(h.cards, cards...)
	return h
}

func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in the order they were received.
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Value is the best blackjack total of the hand. It is recomputed on every call.
func (h *Hand) Value() int {
	return Value(h.cards)
}

func (h *Hand) IsBust() bool {
	return h.Value() > BustLimit
}

// IsSoft reports whether the total still counts an Ace as 11.
func (h *Hand) IsSoft() bool {
	_, soft := score(h.cards)
	return soft > 0
}

// String joins the card names, e.g. "10 of Diamonds - Ace of Clubs".
func (h *Hand) String() string {
	return joinCards(h.cards)
}

// Value scores cards with every Ace at 11, then turns Aces into 1 one at a
// time while the total is above 21. The result does not depend on card order.
func Value(cards []deck.Card) int {
	total, _ := score(cards)
	return total
}

// score returns the total and how many Aces still count as 11.
func score(cards []deck.Card) (total int, softAces int) {
	for _, c := range cards {
		total += c.Rank().Points()
		if c.IsAce() {
			softAces++
		}
	}
	for total > BustLimit && softAces > 0 {
		total -= 10
		softAces--
	}
	return total, softAces
}

func joinCards(cards []deck.Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return strings.Join(names, " - ")
}
