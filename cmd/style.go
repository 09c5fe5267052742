package main

import (
	"strconv"
	"strings"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/domain/deck"
	"github.com/luca-patrignani/blackjack/domain/session"
	"github.com/luca-patrignani/blackjack/ledger"
	"github.com/pterm/pterm"
)

func printRound(result blackjack.RoundResult, block ledger.Block) {
	pterm.DefaultPanel.WithPanels(roundPanels(result, block)).Render()
}

func roundPanels(result blackjack.RoundResult, block ledger.Block) [][]pterm.Panel {
	player := pterm.Panel{Data: handInfo("You", result.PlayerHand, result.PlayerValue)}
	dealer := pterm.Panel{Data: handInfo("Dealer", result.DealerHand, result.DealerValue)}
	return [][]pterm.Panel{
		{player, dealer},
		{getOutcomePanel(result, block)},
	}
}

func handInfo(name string, cards []deck.Card, value int) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var state string
	if value > blackjack.BustLimit {
		state = pterm.LightRed("Bust")
	} else {
		state = pterm.LightGreen("Standing")
	}
	hand := pterm.BgGreen.Sprint(shortCards(cards))
	return pbox.WithTitle(name).WithTitleTopLeft().Sprintf("%s\nTotal: %d\n%s\n", state, value, hand)
}

func getOutcomePanel(result blackjack.RoundResult, block ledger.Block) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("%s (%d vs %d)", outcomeLabel(result.Outcome), result.PlayerValue, result.DealerValue)
	info += pterm.Sprintfln("Bet: $%d", result.Bet)
	info += pterm.Sprintfln("Balance: $%d -> $%d", block.Record.BalanceBefore, block.Record.BalanceAfter)
	title := pterm.LightYellow("|ROUND " + strconv.Itoa(block.Index) + "|")
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopCenter().Sprint(info)}
}

func outcomeLabel(o blackjack.Outcome) string {
	switch o {
	case blackjack.PlayerWins:
		return pterm.LightGreen("You win!")
	case blackjack.DealerWins:
		return pterm.LightRed("Dealer wins")
	case blackjack.Tie:
		return pterm.LightYellow("Push")
	}
	return o.String()
}

func shortCards(cards []deck.Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.Short()
	}
	return strings.Join(s, " - ")
}

func printSummary(sum session.Summary, l *ledger.Ledger) {
	pterm.DefaultSection.Println("Session summary")
	if l.Rounds() > 0 {
		if err := pterm.DefaultTable.WithHasHeader().WithData(historyTable(l.Blocks())).Render(); err != nil {
			pterm.Error.Println(err)
		}
	}
	pterm.Info.Printfln("%d rounds: %d won, %d lost, %d tied", sum.Rounds, sum.Wins, sum.Losses, sum.Ties)
	net := sum.FinalBalance - sum.StartingBalance
	line := pterm.Sprintf("Final balance $%d (%+d), %s", sum.FinalBalance, net, sum.Reason)
	if net < 0 {
		pterm.Warning.Println(line)
	} else {
		pterm.Success.Println(line)
	}
}

// historyTable lists every settled round, skipping the genesis block.
func historyTable(blocks []ledger.Block) pterm.TableData {
	data := pterm.TableData{{"#", "Round", "Bet", "Outcome", "Score", "Balance"}}
	for _, b := range blocks {
		if b.Index == 0 {
			continue
		}
		r := b.Record
		id := r.RoundID
		if len(id) > 8 {
			id = id[:8]
		}
		data = append(data, []string{
			strconv.Itoa(b.Index),
			id,
			strconv.Itoa(r.Bet),
			r.Outcome,
			strconv.Itoa(r.PlayerValue) + "-" + strconv.Itoa(r.DealerValue),
			strconv.Itoa(r.BalanceAfter),
		})
	}
	return data
}
