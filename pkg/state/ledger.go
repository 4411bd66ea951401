// Package state holds the lightweight ledger records the interop layer
// reads and writes: headers, blocks, transactions, contracts, and
// notifications. These are deliberately thin — the full block/transaction
// verification model is out of scope (spec §1) — carrying only the fields
// the syscall catalogue in spec §4.5/§4.6 actually exposes.
package state

import (
	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
)

// Header is the subset of block-header fields System.Header.* accessors
// expose.
type Header struct {
	Index     uint32
	Hash      hash.Uint256
	PrevHash  hash.Uint256
	Timestamp uint64
}

// Block is a Header plus its transaction list, enough to back
// System.Block.*.
type Block struct {
	Header
	Transactions []*Transaction
}

// Transaction is the subset of fields System.Transaction.* and
// CheckWitness's container lookup need.
type Transaction struct {
	Hash            hash.Uint256
	Sender          hash.Uint160
	RequiredSigners []hash.Uint160
}

// RequiresSignatureFrom reports whether h is among the script hashes this
// transaction declares must have signed it — the set CheckWitness checks
// against (spec §4.4, §8 "Witness law").
func (t *Transaction) RequiresSignatureFrom(h hash.Uint160) bool {
	for _, s := range t.RequiredSigners {
		if s.Equals(h) {
			return true
		}
	}
	return false
}

// Contract is the subset of contract metadata GetContract/Contract.Destroy/
// Contract.GetStorageContext operate on (spec §3 "ContractState").
type Contract struct {
	ID         int32
	Hash       hash.Uint160
	HasStorage bool
}

// Notification is a structured event emitted by a contract for off-chain
// observers, preserved in session order (spec §3/§5).
type Notification struct {
	ScriptContainer hash.Uint256
	ScriptHash      hash.Uint160
	Payload         stackitem.Item
}
