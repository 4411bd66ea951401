package syscall

import (
	"github.com/nspcc-dev/neo-interop/pkg/session"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
	"github.com/nspcc-dev/neo-interop/pkg/state"
	"github.com/nspcc-dev/neo-interop/pkg/storage"
)

func popContract(s *session.Session) (*state.Contract, bool) {
	v, ok := popHandle(s, stackitem.HandleContract)
	if !ok {
		return nil, false
	}
	c, ok := v.(*state.Contract)
	return c, ok
}

// ContractDestroy removes the popped contract handle's metadata and purges
// its entire storage partition. Must run under an Application trigger
// (spec §4.3 "Contract.Destroy"); fails under any other trigger kind.
func ContractDestroy(s *session.Session) bool {
	c, ok := popContract(s)
	if !ok {
		return false
	}
	if !s.Trigger.IsApplication() {
		return false
	}
	storage.PurgeContractStorage(s.Snapshot.Storage(), c.Hash)
	s.Snapshot.DeleteContract(c.Hash)
	return true
}

// ContractGetStorageContext pushes a writable StorageContext for the
// popped contract handle, succeeding only if the executing script created
// it (spec §4.3 "Contract.GetStorageContext").
func ContractGetStorageContext(s *session.Session) bool {
	c, ok := popContract(s)
	if !ok {
		return false
	}
	ctx, err := storage.GetStorageContext(s.ContractsCreated, s.Snapshot, s.Engine.CurrentScriptHash(), c.Hash)
	if err != nil {
		return false
	}
	pushHandle(s, stackitem.HandleStorageContext, ctx)
	return true
}
