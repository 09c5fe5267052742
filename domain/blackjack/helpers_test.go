package blackjack

import (
	"io"
	"testing"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// scripted answers the given lines in order, then io.EOF.
type scripted struct {
	lines   []string
	prompts []string
}

func script(lines ...string) *scripted {
	return &scripted{lines: lines}
}

func (s *scripted) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// recorder keeps every reported event.
type recorder struct {
	events []Event
}

func (r *recorder) Report(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds(p Participant) []EventKind {
	var out []EventKind
	for _, e := range r.events {
		if e.Participant == p {
			out = append(out, e.Kind)
		}
	}
	return out
}

func (r *recorder) count(kind EventKind, p Participant) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind && e.Participant == p {
			n++
		}
	}
	return n
}

// noShuffle leaves the deck as built.
type noShuffle struct{}

func (noShuffle) Shuffle(int, func(i, j int)) {}

// stacked returns a deck that deals cards in the given order.
func stacked(cards ...deck.Card) *deck.Deck {
	reversed := make([]deck.Card, len(cards))
	for i, c := range cards {
		reversed[len(cards)-1-i] = c
	}
	return deck.FromCards(reversed...)
}

func card(r deck.Rank, s deck.Suit) deck.Card {
	return deck.MustCard(r, s)
}

func assertCards(t *testing.T, got, want []deck.Card) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d cards %v, got %d %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("card %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
