package syscall

import (
	"github.com/nspcc-dev/neo-interop/pkg/session"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
	"github.com/nspcc-dev/neo-interop/pkg/state"
)

func popBlock(s *session.Session) (*state.Block, bool) {
	v, ok := popHandle(s, stackitem.HandleBlock)
	if !ok {
		return nil, false
	}
	b, ok := v.(*state.Block)
	return b, ok
}

// BlockGetTransactionCount pushes the popped block handle's transaction
// count.
func BlockGetTransactionCount(s *session.Session) bool {
	b, ok := popBlock(s)
	if !ok {
		return false
	}
	pushInt64(s, int64(len(b.Transactions)))
	return true
}

// BlockGetTransactions pushes an Array of transaction handles, one per
// transaction in the popped block. Fails if the block carries more
// transactions than MAX_ARRAY_SIZE allows (spec §4.6).
func BlockGetTransactions(s *session.Session) bool {
	b, ok := popBlock(s)
	if !ok {
		return false
	}
	if len(b.Transactions) > s.Config.MaxArraySize {
		return false
	}
	items := make([]stackitem.Item, len(b.Transactions))
	for i, tx := range b.Transactions {
		items[i] = stackitem.InteropHandle{Kind: stackitem.HandleTransaction, Value: tx}
	}
	s.Engine.Push(stackitem.NewArray(items))
	return true
}

// BlockGetTransaction pushes a handle to the transaction at the popped
// index within the popped block. Fails if the index is out of range.
func BlockGetTransaction(s *session.Session) bool {
	index, ok := popInteger(s)
	if !ok {
		return false
	}
	b, ok := popBlock(s)
	if !ok {
		return false
	}
	if !index.IsInt64() {
		return false
	}
	i := index.Int64()
	if i < 0 || i >= int64(len(b.Transactions)) {
		return false
	}
	pushHandle(s, stackitem.HandleTransaction, b.Transactions[i])
	return true
}
