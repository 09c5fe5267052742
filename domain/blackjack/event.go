package blackjack

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// Participant identifies who an event is about.
type Participant string

const (
	Player Participant = "player"
	Dealer Participant = "dealer"
)

type EventKind string

const (
	EventDeal            EventKind = "deal"
	EventHoleCard        EventKind = "hole_card"
	EventDraw            EventKind = "draw"
	EventHand            EventKind = "hand"
	EventInvalidResponse EventKind = "invalid_response"
	EventBust            EventKind = "bust"
	EventStand           EventKind = "stand"
	EventResult          EventKind = "result"
)

// Event is a notification emitted while a round is played.
// Cards only ever holds cards visible to the player: at deal time the
// dealer's second card is counted in Hidden instead.
type Event struct {
	Kind        EventKind
	RoundID     string
	Participant Participant
	Cards       []deck.Card
	Card        deck.Card
	Hidden      int
	Value       int
	Response    string

	Outcome     Outcome
	PlayerValue int
	DealerValue int
}

// String renders the event as a single human-readable line.
func (e Event) String() string {
	switch e.Kind {
	case EventDeal:
		if e.Participant == Dealer {
			line := "Dealer's initial hand: " + joinCards(e.Cards)
			if e.Hidden > 0 {
				line += " - one card face down"
			}
			return line
		}
		return fmt.Sprintf("Player's initial hand: %s (%d)", joinCards(e.Cards), e.Value)
	case EventHoleCard:
		return fmt.Sprintf("Dealer reveals %s: %s (%d)", e.Card, joinCards(e.Cards), e.Value)
	case EventDraw:
		if e.Participant == Dealer {
			return "Dealer draws: " + e.Card.String()
		}
		return "You drew: " + e.Card.String()
	case EventHand:
		if e.Participant == Dealer {
			return fmt.Sprintf("Dealer's actual hand is: %s (%d)", joinCards(e.Cards), e.Value)
		}
		return fmt.Sprintf("Your actual hand is: %s (%d)", joinCards(e.Cards), e.Value)
	case EventInvalidResponse:
		return fmt.Sprintf("Please enter 'y' or 'n' (got %q).", e.Response)
	case EventBust:
		if e.Participant == Dealer {
			return fmt.Sprintf("Dealer busts with %d.", e.Value)
		}
		return fmt.Sprintf("You bust with %d.", e.Value)
	case EventStand:
		if e.Participant == Dealer {
			return fmt.Sprintf("Dealer stands on %d: %s", e.Value, joinCards(e.Cards))
		}
		return fmt.Sprintf("Your hand is: %s (%d)", joinCards(e.Cards), e.Value)
	case EventResult:
		switch e.Outcome {
		case PlayerWins:
			return fmt.Sprintf("The player wins! (%d vs %d)", e.PlayerValue, e.DealerValue)
		case DealerWins:
			return fmt.Sprintf("The dealer wins! (%d vs %d)", e.PlayerValue, e.DealerValue)
		case Tie:
			return fmt.Sprintf("The game is tied! (%d vs %d)", e.PlayerValue, e.DealerValue)
		}
	}
	return string(e.Kind)
}

// Reporter receives round events. Implementations must not retain Cards.
type Reporter interface {
	Report(e Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(e Event)

func (f ReporterFunc) Report(e Event) { f(e) }

// Discard drops every event.
var Discard Reporter = ReporterFunc(func(Event) {})

// SlogReporter writes each event as an info record on a slog.Logger.
type SlogReporter struct {
	logger *slog.Logger
}

func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	return &SlogReporter{logger: logger}
}

func (r *SlogReporter) Report(e Event) {
	level := slog.LevelInfo
	if e.Kind == EventInvalidResponse {
		level = slog.LevelWarn
	}
	r.logger.Log(context.Background(), level, e.String(), slog.String("event", string(e.Kind)))
}

// roundReporter stamps the round ID on every event before forwarding it.
type roundReporter struct {
	id   string
	next Reporter
}

func (r roundReporter) Report(e Event) {
	e.RoundID = r.id
	r.next.Report(e)
}
