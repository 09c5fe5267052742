package blackjack

import (
	"fmt"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// TurnState is the state of the player's turn.
type TurnState uint8

const (
	Deciding TurnState = iota
	Busted
	Standing
)

func (s TurnState) String() string {
	switch s {
	case Deciding:
		return "deciding"
	case Busted:
		return "busted"
	case Standing:
		return "standing"
	}
	return "unknown"
}

// PlayerTurn asks the player to hit or stand until they stand or bust.
type PlayerTurn struct {
	hand     *Hand
	deck     *deck.Deck
	input    Input
	reporter Reporter

	state     TurnState
	presented int
}

func NewPlayerTurn(hand *Hand, d *deck.Deck, input Input, reporter Reporter) *PlayerTurn {
	return &PlayerTurn{
		hand:     hand,
		deck:     d,
		input:    input,
		reporter: reporter,
		state:    Deciding,
	}
}

func (t *PlayerTurn) State() TurnState {
	return t.state
}

// Run drives the turn to Busted or Standing. Input errors and an exhausted
// deck stop the turn in Deciding and are returned.
func (t *PlayerTurn) Run() (TurnState, error) {
	for t.state == Deciding {
		if err := t.step(); err != nil {
			return t.state, err
		}
	}
	return t.state, nil
}

func (t *PlayerTurn) step() error {
	if t.presented != t.hand.Len() {
		t.report(EventHand)
		t.presented = t.hand.Len()
	}

	line, err := t.input.ReadLine(HitPrompt)
	if err != nil {
		return fmt.Errorf("read player decision: %w", err)
	}
	hit, ok := ParseYesNo(line)
	if !ok {
		t.reporter.Report(Event{Kind: EventInvalidResponse, Participant: Player, Response: line})
		return nil
	}
	if !hit {
		t.state = Standing
		t.report(EventStand)
		return nil
	}

	c, err := t.deck.Draw()
	if err != nil {
		return fmt.Errorf("player draw: %w", err)
	}
	t.hand.Add(c)
	t.reporter.Report(Event{Kind: EventDraw, Participant: Player, Card: c, Value: t.hand.Value()})
	if t.hand.IsBust() {
		t.state = Busted
		t.report(EventHand)
		t.report(EventBust)
	}
	return nil
}

func (t *PlayerTurn) report(kind EventKind) {
	t.reporter.Report(Event{
		Kind:        kind,
		Participant: Player,
		Cards:       t.hand.Cards(),
		Value:       t.hand.Value(),
	})
}
