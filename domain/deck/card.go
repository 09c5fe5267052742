package deck

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
)

// Suit of a playing card.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in the order used to build a fresh deck.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	}
	return "?"
}

// Symbol returns the colored glyph of the suit (♥, ♦, ♣, ♠).
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return pterm.LightRed("♥")
	case Diamonds:
		return pterm.LightRed("♦")
	case Clubs:
		return pterm.LightWhite("♣")
	case Spades:
		return pterm.LightWhite("♠")
	}
	return "?"
}

// Rank of a playing card. Numeral ranks carry their face value.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in the order used to build a fresh deck.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}
	if r >= Two && r <= Ten {
		return strconv.Itoa(int(r))
	}
	return "?"
}

// Points returns the blackjack value of the rank: face value for numerals,
// 10 for Jack, Queen and King, 11 for an Ace.
func (r Rank) Points() int {
	switch {
	case r == Ace:
		return 11
	case r >= Jack:
		return 10
	}
	return int(r)
}

func (r Rank) short() string {
	switch r {
	case Jack, Queen, King, Ace:
		return r.String()[:1]
	}
	return r.String()
}

// Card is an immutable (rank, suit) pair.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard validates rank and suit and returns the Card.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("invalid rank %d", rank)
	}
	if suit > Spades {
		return Card{}, fmt.Errorf("invalid suit %d", suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is like NewCard but panics on an invalid rank or suit.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Suit() Suit {
	return c.suit
}

// IsAce reports whether the card is an Ace.
func (c Card) IsAce() bool {
	return c.rank == Ace
}

// String renders the card as "<rank> of <suit>", e.g. "10 of Diamonds".
func (c Card) String() string {
	return c.rank.String() + " of " + c.suit.String()
}

// Short renders a compact colored form such as "A♥" for the terminal.
func (c Card) Short() string {
	return c.rank.short() + c.suit.Symbol()
}
