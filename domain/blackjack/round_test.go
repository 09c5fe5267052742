package blackjack

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

func stackedTable(in Input, r Reporter, cards ...deck.Card) *Table {
	return NewTable(noShuffle{}, in, r,
		WithDeckFactory(func() *deck.Deck { return stacked(cards...) }),
		WithRoundIDs(func() string { return "round-1" }),
	)
}

func TestPlayRoundOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		input       []string
		cards       []deck.Card // player, player, dealer, dealer, then draws
		outcome     Outcome
		state       TurnState
		playerValue int
		dealerValue int
		dealerDraws int
	}{
		{
			name:  "player stands and wins",
			input: []string{"n"},
			cards: []deck.Card{
				card(deck.Ten, deck.Hearts), card(deck.Nine, deck.Spades),
				card(deck.Ten, deck.Clubs), card(deck.Six, deck.Diamonds),
				card(deck.Two, deck.Hearts),
			},
			outcome: PlayerWins, state: Standing, playerValue: 19, dealerValue: 18, dealerDraws: 1,
		},
		{
			name:  "player busts and the dealer does not play",
			input: []string{"y"},
			cards: []deck.Card{
				card(deck.King, deck.Hearts), card(deck.King, deck.Spades),
				card(deck.Five, deck.Clubs), card(deck.Six, deck.Diamonds),
				card(deck.King, deck.Clubs),
			},
			outcome: DealerWins, state: Busted, playerValue: 30, dealerValue: 11, dealerDraws: 0,
		},
		{
			name:  "tie",
			input: []string{"n"},
			cards: []deck.Card{
				card(deck.Ten, deck.Hearts), card(deck.Eight, deck.Spades),
				card(deck.Ten, deck.Clubs), card(deck.Eight, deck.Diamonds),
			},
			outcome: Tie, state: Standing, playerValue: 18, dealerValue: 18, dealerDraws: 0,
		},
		{
			name:  "dealer busts",
			input: []string{"n"},
			cards: []deck.Card{
				card(deck.Ten, deck.Hearts), card(deck.Two, deck.Spades),
				card(deck.Ten, deck.Clubs), card(deck.Six, deck.Diamonds),
				card(deck.King, deck.Hearts),
			},
			outcome: PlayerWins, state: Standing, playerValue: 12, dealerValue: 26, dealerDraws: 1,
		},
		{
			name:  "dealer beats a standing player",
			input: []string{"y", "n"},
			cards: []deck.Card{
				card(deck.Five, deck.Hearts), card(deck.Four, deck.Spades),
				card(deck.Queen, deck.Clubs), card(deck.Nine, deck.Diamonds),
				card(deck.Seven, deck.Hearts),
			},
			outcome: DealerWins, state: Standing, playerValue: 16, dealerValue: 19, dealerDraws: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := stackedTable(script(tt.input...), Discard, tt.cards...).PlayRound(100)
			if err != nil {
				t.Fatal(err)
			}
			if result.Outcome != tt.outcome {
				t.Errorf("outcome = %s, want %s", result.Outcome, tt.outcome)
			}
			if result.PlayerState != tt.state {
				t.Errorf("player state = %s, want %s", result.PlayerState, tt.state)
			}
			if result.PlayerValue != tt.playerValue || result.DealerValue != tt.dealerValue {
				t.Errorf("values = %d vs %d, want %d vs %d", result.PlayerValue, result.DealerValue, tt.playerValue, tt.dealerValue)
			}
			if result.DealerDraws != tt.dealerDraws {
				t.Errorf("dealer draws = %d, want %d", result.DealerDraws, tt.dealerDraws)
			}
			if result.Delta() != tt.outcome.Delta(100) {
				t.Errorf("delta = %d, want %d", result.Delta(), tt.outcome.Delta(100))
			}
			if result.ID != "round-1" || result.Bet != 100 {
				t.Errorf("unexpected id/bet %q/%d", result.ID, result.Bet)
			}
		})
	}
}

func TestPlayRoundDealsPlayerFirst(t *testing.T) {
	cards := []deck.Card{
		card(deck.Two, deck.Hearts), card(deck.Three, deck.Hearts),
		card(deck.Ten, deck.Clubs), card(deck.Seven, deck.Clubs),
	}
	result, err := stackedTable(script("n"), Discard, cards...).PlayRound(10)
	if err != nil {
		t.Fatal(err)
	}
	assertCards(t, result.PlayerHand, cards[:2])
	assertCards(t, result.DealerHand, cards[2:])
}

func TestPlayRoundHidesHoleCardUntilDealerTurn(t *testing.T) {
	hole := card(deck.Seven, deck.Clubs)
	rec := &recorder{}
	_, err := stackedTable(script("n"), rec,
		card(deck.Two, deck.Hearts), card(deck.Three, deck.Hearts),
		card(deck.Ten, deck.Clubs), hole,
	).PlayRound(10)
	if err != nil {
		t.Fatal(err)
	}

	for _, e := range rec.events {
		if e.Kind == EventHoleCard {
			if e.Card != hole {
				t.Fatalf("revealed %s, want %s", e.Card, hole)
			}
			return
		}
		if slices.Contains(e.Cards, hole) || strings.Contains(e.String(), hole.String()) {
			t.Fatalf("hole card leaked before reveal in %s event: %q", e.Kind, e.String())
		}
		if e.RoundID != "round-1" {
			t.Fatalf("event %s not stamped with the round id", e.Kind)
		}
	}
	t.Fatal("hole card never revealed")
}

func TestPlayRoundEventOrder(t *testing.T) {
	rec := &recorder{}
	_, err := stackedTable(script("n"), rec,
		card(deck.Ten, deck.Hearts), card(deck.Nine, deck.Spades),
		card(deck.Ten, deck.Clubs), card(deck.Six, deck.Diamonds),
		card(deck.Two, deck.Hearts),
	).PlayRound(10)
	if err != nil {
		t.Fatal(err)
	}

	wantPlayer := []EventKind{EventDeal, EventHand, EventStand}
	if got := rec.kinds(Player); !slices.Equal(got, wantPlayer) {
		t.Fatalf("player events = %v, want %v", got, wantPlayer)
	}
	wantDealer := []EventKind{EventDeal, EventHoleCard, EventDraw, EventHand, EventStand}
	if got := rec.kinds(Dealer); !slices.Equal(got, wantDealer) {
		t.Fatalf("dealer events = %v, want %v", got, wantDealer)
	}
	last := rec.events[len(rec.events)-1]
	if last.Kind != EventResult || last.Outcome != PlayerWins {
		t.Fatalf("expected a final player-wins result, got %+v", last)
	}
}

func TestPlayRoundSeededIsReproducible(t *testing.T) {
	play := func() RoundResult {
		table := NewTable(deck.NewSeededShuffler(2024), script("n"), Discard)
		result, err := table.PlayRound(25)
		if err != nil {
			t.Fatal(err)
		}
		return result
	}
	a, b := play(), play()
	if !slices.Equal(a.PlayerHand, b.PlayerHand) || !slices.Equal(a.DealerHand, b.DealerHand) {
		t.Fatal("same seed and input gave different hands")
	}
	if a.Outcome != b.Outcome {
		t.Fatal("same seed and input gave different outcomes")
	}
	if a.ID == b.ID {
		t.Fatal("round ids must be unique")
	}
	if a.Outcome != Evaluate(a.PlayerValue, a.DealerValue) {
		t.Fatalf("outcome %s does not match %d vs %d", a.Outcome, a.PlayerValue, a.DealerValue)
	}
	if a.Delta() != a.Outcome.Delta(25) {
		t.Fatalf("delta %d does not match outcome %s", a.Delta(), a.Outcome)
	}
	if a.DealerValue < DealerStandsOn {
		t.Fatalf("dealer stopped on %d", a.DealerValue)
	}
}

func TestPlayRoundDeckExhausted(t *testing.T) {
	table := stackedTable(script("n"), Discard,
		card(deck.Two, deck.Hearts), card(deck.Three, deck.Hearts), card(deck.Four, deck.Hearts))
	_, err := table.PlayRound(10)
	if !errors.Is(err, deck.ErrDeckExhausted) {
		t.Fatalf("expected ErrDeckExhausted, got %v", err)
	}
}

func TestPlayRoundDealerRunsOutOfCards(t *testing.T) {
	table := stackedTable(script("n"), Discard,
		card(deck.Ten, deck.Hearts), card(deck.Nine, deck.Hearts),
		card(deck.Two, deck.Clubs), card(deck.Three, deck.Clubs))
	_, err := table.PlayRound(10)
	if !errors.Is(err, deck.ErrDeckExhausted) {
		t.Fatalf("expected ErrDeckExhausted, got %v", err)
	}
}

func TestPlayRoundInputClosed(t *testing.T) {
	table := NewTable(deck.NewSeededShuffler(1), script(), Discard)
	_, err := table.PlayRound(10)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
