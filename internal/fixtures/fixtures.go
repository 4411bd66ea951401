// Package fixtures holds the test builders shared across pkg/syscall's
// test files: deterministic script
// hashes, a minimal fake execution engine, and small ledger records. None
// of this is exported outside test binaries' reach on purpose — it is test
// plumbing, not a public API.
package fixtures

import (
	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
	"github.com/nspcc-dev/neo-interop/pkg/state"
)

// ScriptHash returns a deterministic, non-zero Uint160 seeded by b, handy
// for tests that need several distinct-but-reproducible script hashes.
func ScriptHash(b byte) hash.Uint160 {
	var h hash.Uint160
	h[0] = b
	h[hash.Uint160Size-1] = b
	return h
}

// BlockHash returns a deterministic, non-zero Uint256 seeded by b.
func BlockHash(b byte) hash.Uint256 {
	var h hash.Uint256
	h[0] = b
	h[hash.Uint256Size-1] = b
	return h
}

// Header builds a minimal state.Header at the given index.
func Header(index uint32, seed byte) *state.Header {
	return &state.Header{
		Index:     index,
		Hash:      BlockHash(seed),
		PrevHash:  BlockHash(seed - 1),
		Timestamp: 1_600_000_000 + uint64(index),
	}
}

// Block builds a minimal state.Block at the given index, carrying txs.
func Block(index uint32, seed byte, txs ...*state.Transaction) *state.Block {
	return &state.Block{
		Header:       *Header(index, seed),
		Transactions: txs,
	}
}

// Transaction builds a state.Transaction requiring signatures from signers.
func Transaction(seed byte, signers ...hash.Uint160) *state.Transaction {
	return &state.Transaction{
		Hash:            BlockHash(seed),
		Sender:          ScriptHash(seed),
		RequiredSigners: signers,
	}
}

// Contract builds a minimal state.Contract.
func Contract(id int32, h hash.Uint160, hasStorage bool) *state.Contract {
	return &state.Contract{ID: id, Hash: h, HasStorage: hasStorage}
}

// Engine is a minimal in-memory session.Engine double: a LIFO stack, a gas
// budget decremented by AddGas, and settable script-hash/container fields.
type Engine struct {
	Stack     []stackitem.Item
	Budget    int64
	Current   hash.Uint160
	Calling   hash.Uint160
	Entry     hash.Uint160
	Container stackitem.InteropHandle
	GasSpent  int64
}

// NewEngine returns an Engine with the given gas budget and an empty stack.
func NewEngine(budget int64) *Engine {
	return &Engine{Budget: budget}
}

func (e *Engine) Push(item stackitem.Item) { e.Stack = append(e.Stack, item) }

func (e *Engine) Pop() (stackitem.Item, bool) {
	if len(e.Stack) == 0 {
		return nil, false
	}
	top := e.Stack[len(e.Stack)-1]
	e.Stack = e.Stack[:len(e.Stack)-1]
	return top, true
}

func (e *Engine) CurrentScriptHash() hash.Uint160          { return e.Current }
func (e *Engine) CallingScriptHash() hash.Uint160          { return e.Calling }
func (e *Engine) EntryScriptHash() hash.Uint160            { return e.Entry }
func (e *Engine) ScriptContainer() stackitem.InteropHandle { return e.Container }

// AddGas debits price from the budget, failing (without debiting) if
// insufficient, mirroring the real engine's metering contract (spec §4.3).
func (e *Engine) AddGas(price int64) bool {
	if e.Budget < price {
		return false
	}
	e.Budget -= price
	e.GasSpent += price
	return true
}
