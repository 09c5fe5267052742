package ledger

// Block is one settled round in the ledger.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Record    Record `json:"record"`
}

// Record is the settlement of one round. The genesis block carries only the
// starting balance in BalanceAfter.
type Record struct {
	RoundID       string `json:"round_id"`
	Bet           int    `json:"bet"`
	Outcome       string `json:"outcome"`
	PlayerValue   int    `json:"player_value"`
	DealerValue   int    `json:"dealer_value"`
	BalanceBefore int    `json:"balance_before"`
	BalanceAfter  int    `json:"balance_after"`
}

// Delta is the balance change recorded by the block.
func (r Record) Delta() int {
	return r.BalanceAfter - r.BalanceBefore
}
