package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type Ledger struct {
	mu     sync.RWMutex
	blocks []Block
}

// New creates a ledger whose genesis block has index 0, previous hash "0"
// and the starting balance as BalanceAfter.
func New(startingBalance int) *Ledger {
	l := &Ledger{
		blocks: make([]Block, 0, 16),
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Record:    Record{Outcome: "genesis", BalanceAfter: startingBalance},
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)

	return l
}

// Append links a new block for rec after the latest one. The record must
// start from the balance the latest block left.
func (l *Ledger) Append(rec Record) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.blocks[len(l.blocks)-1]
	if rec.BalanceBefore != latest.Record.BalanceAfter {
		return Block{}, fmt.Errorf("balance mismatch: ledger has %d, record starts from %d", latest.Record.BalanceAfter, rec.BalanceBefore)
	}

	block := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Record:    rec,
	}
	block.Hash = calculateHash(block)

	if err := validateBlock(block, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}

	l.blocks = append(l.blocks, block)
	return block, nil
}

// Latest returns the most recently appended block.
func (l *Ledger) Latest() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.blocks[len(l.blocks)-1]
}

// Get returns the block at index.
func (l *Ledger) Get(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return l.blocks[index], nil
}

// Blocks returns a copy of the chain, genesis first.
func (l *Ledger) Blocks() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// Rounds is the number of settled rounds, genesis excluded.
func (l *Ledger) Rounds() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.blocks) - 1
}

// Verify checks the genesis block and every link, hash and balance of the chain.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("empty ledger")
	}
	if l.blocks[0].PrevHash != "0" || l.blocks[0].Index != 0 {
		return fmt.Errorf("invalid genesis block")
	}
	if l.blocks[0].Hash != calculateHash(l.blocks[0]) {
		return fmt.Errorf("genesis hash mismatch")
	}

	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	if current.Record.BalanceBefore != previous.Record.BalanceAfter {
		return fmt.Errorf("balance gap: %d after block %d, %d before block %d",
			previous.Record.BalanceAfter, previous.Index, current.Record.BalanceBefore, current.Index)
	}
	return nil
}

// calculateHash is the SHA256 of the index, timestamp, previous hash and the
// JSON encoded record.
func calculateHash(b Block) string {
	recordBytes, _ := json.Marshal(b.Record)

	data := fmt.Sprintf("%d%d%s%s", b.Index, b.Timestamp, b.PrevHash, string(recordBytes))
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
