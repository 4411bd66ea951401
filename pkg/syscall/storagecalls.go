package syscall

import (
	"github.com/nspcc-dev/neo-interop/pkg/session"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
	"github.com/nspcc-dev/neo-interop/pkg/storage"
)

func popStorageContext(s *session.Session) (storage.Context, bool) {
	v, ok := popHandle(s, stackitem.HandleStorageContext)
	if !ok {
		return storage.Context{}, false
	}
	ctx, ok := v.(storage.Context)
	return ctx, ok
}

// StorageGetContext pushes a writable StorageContext over the executing
// script's own partition.
func StorageGetContext(s *session.Session) bool {
	pushHandle(s, stackitem.HandleStorageContext, storage.Context{ScriptHash: s.Engine.CurrentScriptHash()})
	return true
}

// StorageGetReadOnlyContext pushes a read-only StorageContext over the
// executing script's own partition.
func StorageGetReadOnlyContext(s *session.Session) bool {
	pushHandle(s, stackitem.HandleStorageContext, storage.Context{ScriptHash: s.Engine.CurrentScriptHash(), ReadOnly: true})
	return true
}

// StorageGet pushes the value stored at key under the popped context, or
// an empty byte string when absent (spec §4.3 "Get semantics").
func StorageGet(s *session.Session) bool {
	key, ok := popByteArray(s)
	if !ok {
		return false
	}
	ctx, ok := popStorageContext(s)
	if !ok {
		return false
	}
	pushBytes(s, storage.Get(s.Snapshot.Storage(), ctx, key))
	return true
}

// storagePriceOf computes Storage.Put/PutEx's variable gas cost: a base
// price plus a per-written-byte surcharge (spec §6 "Storage.Put/PutEx
// (variable)"), following the native Policy contract's storage-price
// convention.
func storagePriceOf(s *session.Session, keyLen, valueLen int) int64 {
	const base = 100
	return base + s.Config.StoragePricePerByte*int64(keyLen+valueLen)
}

// StoragePut writes value at key under the popped context with no flags,
// charging its own variable gas cost before attempting the write (spec
// §4.8).
func StoragePut(s *session.Session) bool {
	return storagePut(s, "System.Storage.Put", 0)
}

// StoragePutEx writes value at key under the popped context, honoring the
// Constant flag popped first (it sits on top of the stack), and charges its
// own variable gas cost.
func StoragePutEx(s *session.Session) bool {
	flags, ok := popInteger(s)
	if !ok {
		return false
	}
	return storagePut(s, "System.Storage.PutEx", storage.PutFlags(flags.Int64()))
}

func storagePut(s *session.Session, method string, flags storage.PutFlags) bool {
	value, ok := popByteArray(s)
	if !ok {
		return false
	}
	key, ok := popByteArray(s)
	if !ok {
		return false
	}
	ctx, ok := popStorageContext(s)
	if !ok {
		return false
	}
	if !s.ChargeVariable(method, storagePriceOf(s, len(key), len(value))) {
		return false
	}
	return storage.Put(s.Snapshot.Storage(), s.Snapshot, s.Trigger, ctx, key, value, flags) == nil
}

// StorageDelete removes the entry at key under the popped context (spec
// §4.3 "Delete semantics").
func StorageDelete(s *session.Session) bool {
	key, ok := popByteArray(s)
	if !ok {
		return false
	}
	ctx, ok := popStorageContext(s)
	if !ok {
		return false
	}
	return storage.Delete(s.Snapshot.Storage(), s.Snapshot, s.Trigger, ctx, key) == nil
}

// StorageContextAsReadOnly pushes a read-only copy of the popped context,
// preserving the underlying partition's identity (spec §4.3 "AsReadOnly").
func StorageContextAsReadOnly(s *session.Session) bool {
	ctx, ok := popStorageContext(s)
	if !ok {
		return false
	}
	pushHandle(s, stackitem.HandleStorageContext, ctx.AsReadOnly())
	return true
}
