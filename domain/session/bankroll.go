package session

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

// DefaultStartingBalance is the bankroll a new player starts with.
const DefaultStartingBalance = 1000

var (
	ErrInvalidBet        = errors.New("bet must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Bankroll is the player's balance across the rounds of one session.
type Bankroll struct {
	balance int
}

func NewBankroll(balance int) *Bankroll {
	return &Bankroll{balance: balance}
}

func (b *Bankroll) Balance() int {
	return b.balance
}

// ValidateBet accepts bets with 0 < bet <= balance.
func (b *Bankroll) ValidateBet(bet int) error {
	if bet <= 0 {
		return fmt.Errorf("bet %d: %w", bet, ErrInvalidBet)
	}
	if bet > b.balance {
		return fmt.Errorf("bet %d with balance %d: %w", bet, b.balance, ErrInsufficientFunds)
	}
	return nil
}

// Settle applies the outcome of a round played for bet and returns the new balance.
func (b *Bankroll) Settle(o blackjack.Outcome, bet int) int {
	b.balance += o.Delta(bet)
	return b.balance
}
