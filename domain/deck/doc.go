// Package deck models a standard 52-card deck for blackjack.
//
// # Core Types
//
// Card: an immutable (rank, suit) pair rendered as "<rank> of <suit>".
//
// Deck: an ordered pile of cards. Draw removes the top card and never puts it
// back; drawing from an empty deck returns ErrDeckExhausted.
//
// Shuffler: the random source used by Deck.Shuffle. NewSeededShuffler gives a
// reproducible order for a fixed seed, NewSecureShuffler draws from a
// cryptographic stream.
package deck
