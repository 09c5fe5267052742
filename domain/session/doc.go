// Package session runs a blackjack session: it takes bets, plays rounds on a
// blackjack.Table, settles them on the Bankroll and records every settlement
// in a ledger. A session ends when the player quits, the balance reaches zero
// or the input is closed.
package session
