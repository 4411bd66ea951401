package syscall

import (
	"github.com/nspcc-dev/neo-interop/pkg/session"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
	"github.com/nspcc-dev/neo-interop/pkg/state"
)

// TransactionGetHash pushes the popped transaction handle's hash.
func TransactionGetHash(s *session.Session) bool {
	v, ok := popHandle(s, stackitem.HandleTransaction)
	if !ok {
		return false
	}
	tx, ok := v.(*state.Transaction)
	if !ok {
		return false
	}
	pushBytes(s, tx.Hash.BytesLE())
	return true
}
