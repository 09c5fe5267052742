// Package ledger keeps an append-only, hash-chained history of the rounds
// settled during one game session.
//
// # Core Components
//
// Ledger: the chain of blocks, starting from a genesis block that records the
// starting balance.
//
// Block: a single settled round with the balance before and after settlement
// and the hash of the previous block.
//
// # Integrity
//
// Append rejects a record whose starting balance does not match the balance
// left by the previous block. Verify recomputes every hash, so a block edited
// after the fact is detected.
//
// The ledger lives in memory only and is discarded when the process exits.
package ledger
