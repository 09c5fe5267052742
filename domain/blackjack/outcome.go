package blackjack

// Outcome of a round from the player's point of view.
type Outcome uint8

const (
	PlayerWins Outcome = iota + 1
	DealerWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case PlayerWins:
		return "player wins"
	case DealerWins:
		return "dealer wins"
	case Tie:
		return "tie"
	}
	return "unknown"
}

// Evaluate compares the final totals. A player bust loses even when the
// dealer busts too.
func Evaluate(playerValue, dealerValue int) Outcome {
	switch {
	case playerValue > BustLimit:
		return DealerWins
	case dealerValue > BustLimit:
		return PlayerWins
	case playerValue > dealerValue:
		return PlayerWins
	case playerValue < dealerValue:
		return DealerWins
	}
	return Tie
}

// Delta is the bankroll change for a bet settled with this outcome.
func (o Outcome) Delta(bet int) int {
	switch o {
	case PlayerWins:
		return bet
	case DealerWins:
		return -bet
	}
	return 0
}
