// Package snapshot defines the read/write view of ledger state that
// syscalls consume (spec §4.7's "Snapshot façade" and spec §6's "Snapshot"
// consumed interface), plus reference adapters over two concrete storage
// engines. The façade is exclusively owned by one session for its lifetime
// (spec §5) — none of its methods are safe to call from more than one
// goroutine at a time.
package snapshot

import (
	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/state"
	"github.com/nspcc-dev/neo-interop/pkg/storage"
)

// Snapshot is the façade a ServiceSession is constructed over: keyed
// lookups for blocks/transactions/contracts/storage, a height, the
// currently persisting block (if any), and a commit operation that flushes
// changes to the durable store.
type Snapshot interface {
	// Height is the index of the highest persisted block.
	Height() uint32
	// PersistingBlock is the block currently being persisted, if any —
	// GetTime's primary source (spec §4.4).
	PersistingBlock() (*state.Block, bool)
	// BestHeader is the header at Height, GetTime's fallback source.
	BestHeader() (*state.Header, bool)

	GetHeader(h hash.Uint256) (*state.Header, bool)
	GetHeaderByIndex(index uint32) (*state.Header, bool)
	GetBlock(h hash.Uint256) (*state.Block, bool)
	GetBlockByIndex(index uint32) (*state.Block, bool)
	GetTransaction(h hash.Uint256) (*state.Transaction, bool)
	GetTransactionHeight(h hash.Uint256) (uint32, bool)

	GetContract(h hash.Uint160) (*state.Contract, bool)
	PutContract(c *state.Contract)
	DeleteContract(h hash.Uint160)

	// Storage exposes the flat (scriptHash||key) keyspace storage.Get/
	// Put/Delete/GetStorageContext/PurgeContractStorage operate over.
	Storage() storage.Namespace

	// Commit flushes every change made through this façade to the
	// durable store.
	Commit() error
}

// GetAndChange is the get-and-change-with-default helper spec §6 names
// among the Snapshot consumed interface's operations
// ("storages.get_and_change(key, default_factory)"): it returns the
// existing item, or a freshly constructed default (not yet persisted)
// when absent, leaving the caller to mutate and Put it back.
func GetAndChange(ns storage.Namespace, key storage.Key, makeDefault func() storage.Item) storage.Item {
	if item, ok := ns.Get(key); ok {
		return item
	}
	return makeDefault()
}
