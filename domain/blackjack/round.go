package blackjack

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// RoundResult is what a finished round hands back to the session.
type RoundResult struct {
	ID          string
	Bet         int
	PlayerHand  []deck.Card
	DealerHand  []deck.Card
	PlayerValue int
	DealerValue int
	PlayerState TurnState
	DealerDraws int
	Outcome     Outcome
}

// Delta is the bankroll change the round settles to.
func (r RoundResult) Delta() int {
	return r.Outcome.Delta(r.Bet)
}

// Table plays rounds of blackjack. A Table keeps no state between rounds:
// every round gets a new deck and new hands.
type Table struct {
	shuffler deck.Shuffler
	input    Input
	reporter Reporter
	newDeck  func() *deck.Deck
	newID    func() string
}

type Option func(Table) Table

// WithDeckFactory replaces the standard 52-card deck, e.g. with a stacked one.
func WithDeckFactory(f func() *deck.Deck) Option {
	return func(t Table) Table {
		t.newDeck = f
		return t
	}
}

// WithRoundIDs replaces the uuid round identifiers.
func WithRoundIDs(f func() string) Option {
	return func(t Table) Table {
		t.newID = f
		return t
	}
}

func NewTable(shuffler deck.Shuffler, input Input, reporter Reporter, opts ...Option) *Table {
	if reporter == nil {
		reporter = Discard
	}
	t := Table{
		shuffler: shuffler,
		input:    input,
		reporter: reporter,
		newDeck:  deck.New,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		t = opt(t)
	}
	return &t
}

// PlayRound deals, runs the player's and the dealer's turns and evaluates
// the outcome once. When the player busts the dealer does not play and keeps
// the two dealt cards. Errors leave the round unsettled.
func (t *Table) PlayRound(bet int) (RoundResult, error) {
	result := RoundResult{ID: t.newID(), Bet: bet}
	reporter := roundReporter{id: result.ID, next: t.reporter}

	d := t.newDeck()
	d.Shuffle(t.shuffler)

	player, dealer, err := deal(d)
	if err != nil {
		return result, err
	}
	reporter.Report(Event{Kind: EventDeal, Participant: Player, Cards: player.Cards(), Value: player.Value()})
	reporter.Report(Event{Kind: EventDeal, Participant: Dealer, Cards: dealer.Cards()[:1], Hidden: 1})

	state, err := NewPlayerTurn(player, d, t.input, reporter).Run()
	result.PlayerState = state
	if err != nil {
		return result, err
	}

	if state != Busted {
		draws, err := NewDealerTurn(dealer, d, reporter).Run()
		result.DealerDraws = draws
		if err != nil {
			return result, err
		}
	}

	result.PlayerHand = player.Cards()
	result.DealerHand = dealer.Cards()
	result.PlayerValue = player.Value()
	result.DealerValue = dealer.Value()
	result.Outcome = Evaluate(result.PlayerValue, result.DealerValue)

	reporter.Report(Event{
		Kind:        EventResult,
		Outcome:     result.Outcome,
		PlayerValue: result.PlayerValue,
		DealerValue: result.DealerValue,
	})
	return result, nil
}

// deal gives the player two cards from the top, then the dealer two.
func deal(d *deck.Deck) (player *Hand, dealer *Hand, err error) {
	player, dealer = NewHand(), NewHand()
	for _, h := range []*Hand{player, player, dealer, dealer} {
		c, err := d.Draw()
		if err != nil {
			return nil, nil, fmt.Errorf("initial deal: %w", err)
		}
		h.Add(c)
	}
	return player, dealer, nil
}
