// Package blackjack implements the round engine of a single-player blackjack
// game against an automated dealer.
//
// # Round Flow
//
// Table.PlayRound builds and shuffles a fresh deck, deals two cards to the
// player and two to the dealer (the second one face down), runs the
// PlayerTurn until the player stands or busts, runs the DealerTurn unless the
// player busted, and evaluates the Outcome exactly once.
//
// # Scoring
//
// Value counts numerals at face value, Jack, Queen and King as 10 and every
// Ace as 11, then lowers Aces to 1 one at a time while the total exceeds 21.
//
// # Collaborators
//
// Input supplies the player's answers and Reporter receives every Event of
// the round. Both are injected, so a round with a seeded Shuffler and a
// scripted Input is fully reproducible.
package blackjack
