package subscription

// Transaction is a single transaction carried inside a Block. It has no
// identity of its own beyond the block that contains it.
type Transaction struct {
	Hash string // Unique transaction hash identifier
	From string // Sender address
	To   string // Recipient address
}

// Block is one entry of the append-only ledger. Its identity is its hash:
// two blocks with the same hash are the same block.
type Block struct {
	Index        uint64        // Position of the block in the ledger
	Hash         string        // Unique block hash
	PreviousHash string        // Hash of the preceding block
	Transactions []Transaction // Transactions included in the block, in order
}

// Equal reports whether b and other identify the same ledger entry.
func (b Block) Equal(other Block) bool {
	return b.Hash == other.Hash
}

// IsZero reports whether b is the zero Block, used as the "no block observed
// yet" cursor state.
func (b Block) IsZero() bool {
	return b.Hash == ""
}
