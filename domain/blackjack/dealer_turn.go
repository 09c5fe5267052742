package blackjack

import (
	"fmt"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// DealerTurn plays the dealer's fixed policy: draw below 17, stand otherwise.
type DealerTurn struct {
	hand     *Hand
	deck     *deck.Deck
	reporter Reporter
}

func NewDealerTurn(hand *Hand, d *deck.Deck, reporter Reporter) *DealerTurn {
	return &DealerTurn{hand: hand, deck: d, reporter: reporter}
}

// Run reveals the hole card and draws until the total reaches DealerStandsOn.
// It returns the number of cards drawn.
func (t *DealerTurn) Run() (int, error) {
	if t.hand.Len() > 1 {
		cards := t.hand.Cards()
		t.reporter.Report(Event{
			Kind:        EventHoleCard,
			Participant: Dealer,
			Card:        cards[1],
			Cards:       cards,
			Value:       t.hand.Value(),
		})
	}

	draws := 0
	for t.hand.Value() < DealerStandsOn {
		c, err := t.deck.Draw()
		if err != nil {
			return draws, fmt.Errorf("dealer draw: %w", err)
		}
		t.hand.Add(c)
		draws++
		t.reporter.Report(Event{Kind: EventDraw, Participant: Dealer, Card: c, Value: t.hand.Value()})
		t.report(EventHand)
	}

	if t.hand.IsBust() {
		t.report(EventBust)
	} else {
		t.report(EventStand)
	}
	return draws, nil
}

func (t *DealerTurn) report(kind EventKind) {
	t.reporter.Report(Event{
		Kind:        kind,
		Participant: Dealer,
		Cards:       t.hand.Cards(),
		Value:       t.hand.Value(),
	})
}
