package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/ledger"
)

const (
	BetPrompt       = "How much money do you want to bet?"
	PlayAgainPrompt = "Do you want to play again? (y / n)"
)

// RoundPlayer plays one round for a bet. *blackjack.Table implements it.
type RoundPlayer interface {
	PlayRound(bet int) (blackjack.RoundResult, error)
}

type EndReason string

const (
	EndOutOfMoney  EndReason = "out of money"
	EndPlayerQuit  EndReason = "player quit"
	EndInputClosed EndReason = "input closed"
)

// Summary describes a finished session.
type Summary struct {
	Rounds          int
	Wins            int
	Losses          int
	Ties            int
	StartingBalance int
	FinalBalance    int
	Reason          EndReason
}

// Session runs rounds until the player quits, runs out of money or the input closes.
type Session struct {
	table    RoundPlayer
	bankroll *Bankroll
	input    blackjack.Input
	logger   *slog.Logger
	ledger   *ledger.Ledger
	onRound  func(blackjack.RoundResult, ledger.Block)
}

type Option func(Session) Session

// WithRoundHook calls f after every settled round.
func WithRoundHook(f func(blackjack.RoundResult, ledger.Block)) Option {
	return func(s Session) Session {
		s.onRound = f
		return s
	}
}

func New(table RoundPlayer, bankroll *Bankroll, input blackjack.Input, logger *slog.Logger, opts ...Option) *Session {
	s := Session{
		table:    table,
		bankroll: bankroll,
		input:    input,
		logger:   logger,
		ledger:   ledger.New(bankroll.Balance()),
		onRound:  func(blackjack.RoundResult, ledger.Block) {},
	}
	for _, opt := range opts {
		s = opt(s)
	}
	return &s
}

// Ledger returns the history of the rounds settled so far.
func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// Run plays the session. A round never starts with an empty bankroll, and a
// tie leaves the balance untouched, so after a tie the player is always
// asked whether to continue. A closed input ends the session without error;
// any other failure, like an exhausted deck, is returned.
func (s *Session) Run() (Summary, error) {
	sum := Summary{StartingBalance: s.bankroll.Balance()}

	for {
		if s.bankroll.Balance() <= 0 {
			s.logger.Info("You have run out of money. Game over.")
			sum.Reason = EndOutOfMoney
			break
		}

		bet, err := s.askBet()
		if err != nil {
			if errors.Is(err, io.EOF) {
				sum.Reason = EndInputClosed
				break
			}
			return s.finish(sum), err
		}

		result, err := s.table.PlayRound(bet)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Warn("input closed mid-round, the bet is not settled")
				sum.Reason = EndInputClosed
				break
			}
			return s.finish(sum), fmt.Errorf("round aborted: %w", err)
		}

		if err := s.settle(result); err != nil {
			return s.finish(sum), err
		}
		switch result.Outcome {
		case blackjack.PlayerWins:
			sum.Wins++
		case blackjack.DealerWins:
			sum.Losses++
		case blackjack.Tie:
			sum.Ties++
		}

		if s.bankroll.Balance() <= 0 {
			continue
		}
		again, err := s.askPlayAgain()
		if err != nil {
			if errors.Is(err, io.EOF) {
				sum.Reason = EndInputClosed
				break
			}
			return s.finish(sum), err
		}
		if !again {
			sum.Reason = EndPlayerQuit
			break
		}
	}

	s.logger.Info("Thanks for playing!")
	return s.finish(sum), nil
}

func (s *Session) finish(sum Summary) Summary {
	sum.Rounds = s.ledger.Rounds()
	sum.FinalBalance = s.bankroll.Balance()
	return sum
}

func (s *Session) settle(result blackjack.RoundResult) error {
	before := s.bankroll.Balance()
	after := s.bankroll.Settle(result.Outcome, result.Bet)

	switch result.Outcome {
	case blackjack.PlayerWins:
		s.logger.Info("Congratulations! You win!", "amount", result.Bet)
	case blackjack.DealerWins:
		s.logger.Info("Sorry, you lost.", "amount", result.Bet)
	case blackjack.Tie:
		s.logger.Info("Push, your bet is returned.")
	}

	block, err := s.ledger.Append(ledger.Record{
		RoundID:       result.ID,
		Bet:           result.Bet,
		Outcome:       result.Outcome.String(),
		PlayerValue:   result.PlayerValue,
		DealerValue:   result.DealerValue,
		BalanceBefore: before,
		BalanceAfter:  after,
	})
	if err != nil {
		return fmt.Errorf("record round %s: %w", result.ID, err)
	}
	s.logger.Info(fmt.Sprintf("Your current balance is: $%d.", after))
	s.onRound(result, block)
	return nil
}

func (s *Session) askBet() (int, error) {
	for {
		line, err := s.input.ReadLine(BetPrompt)
		if err != nil {
			return 0, fmt.Errorf("read bet: %w", err)
		}
		bet, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.logger.Warn("Please enter a whole amount.", "input", line)
			continue
		}
		err = s.bankroll.ValidateBet(bet)
		switch {
		case errors.Is(err, ErrInvalidBet):
			s.logger.Warn("Please enter a valid amount greater than zero.")
		case errors.Is(err, ErrInsufficientFunds):
			s.logger.Warn("Your funds are not sufficient. Please enter a lower amount.", "balance", s.bankroll.Balance())
		case err == nil:
			return bet, nil
		default:
			return 0, err
		}
	}
}

func (s *Session) askPlayAgain() (bool, error) {
	for {
		line, err := s.input.ReadLine(PlayAgainPrompt)
		if err != nil {
			return false, fmt.Errorf("read play again: %w", err)
		}
		if yes, ok := blackjack.ParseYesNo(line); ok {
			return yes, nil
		}
		s.logger.Warn("Please enter 'y' or 'n'.")
	}
}
