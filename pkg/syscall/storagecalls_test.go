package syscall

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nspcc-dev/neo-interop/internal/fixtures"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
	"github.com/nspcc-dev/neo-interop/pkg/storage"
)

func TestStorageGetContextUsesExecutingScriptHash(t *testing.T) {
	engine := fixtures.NewEngine(1000)
	s := newTestSession(engine)
	engine.Current = fixtures.ScriptHash(3)

	require.True(t, StorageGetContext(s))
	v, ok := popHandle(s, stackitem.HandleStorageContext)
	require.True(t, ok)
	ctx := v.(storage.Context)
	require.Equal(t, engine.Current, ctx.ScriptHash)
	require.False(t, ctx.ReadOnly)
}

func TestStorageGetReadOnlyContextSetsReadOnly(t *testing.T) {
	engine := fixtures.NewEngine(1000)
	s := newTestSession(engine)

	require.True(t, StorageGetReadOnlyContext(s))
	v, ok := popHandle(s, stackitem.HandleStorageContext)
	require.True(t, ok)
	require.True(t, v.(storage.Context).ReadOnly)
}

func newWritableContext(engine *fixtures.Engine) storage.Context {
	return storage.Context{ScriptHash: engine.Current}
}

func TestStoragePutThenGetRoundTrips(t *testing.T) {
	engine := fixtures.NewEngine(100000)
	s := newTestSession(engine)
	h := fixtures.ScriptHash(5)
	engine.Current = h
	s.Snapshot.PutContract(fixtures.Contract(1, h, true))
	ctx := newWritableContext(engine)

	pushHandle(s, stackitem.HandleStorageContext, ctx)
	pushBytes(s, []byte("key"))
	pushBytes(s, []byte("value"))
	require.True(t, StoragePut(s))
	require.Less(t, engine.Budget, int64(100000))

	pushHandle(s, stackitem.HandleStorageContext, ctx)
	pushBytes(s, []byte("key"))
	require.True(t, StorageGet(s))
	raw, ok := popByteArray(s)
	require.True(t, ok)
	require.Equal(t, []byte("value"), raw)
}

func TestStoragePutFailsWhenContextIsReadOnly(t *testing.T) {
	engine := fixtures.NewEngine(100000)
	s := newTestSession(engine)
	h := fixtures.ScriptHash(5)
	engine.Current = h
	s.Snapshot.PutContract(fixtures.Contract(1, h, true))
	ctx := storage.Context{ScriptHash: h, ReadOnly: true}

	pushHandle(s, stackitem.HandleStorageContext, ctx)
	pushBytes(s, []byte("key"))
	pushBytes(s, []byte("value"))
	require.False(t, StoragePut(s))
}

func TestStoragePutFailsWhenGasBudgetInsufficient(t *testing.T) {
	engine := fixtures.NewEngine(1)
	s := newTestSession(engine)
	h := fixtures.ScriptHash(5)
	engine.Current = h
	s.Snapshot.PutContract(fixtures.Contract(1, h, true))
	ctx := newWritableContext(engine)

	pushHandle(s, stackitem.HandleStorageContext, ctx)
	pushBytes(s, []byte("key"))
	pushBytes(s, []byte("value"))
	require.False(t, StoragePut(s))
}

func TestStoragePutExLatchesConstantFlag(t *testing.T) {
	engine := fixtures.NewEngine(100000)
	s := newTestSession(engine)
	h := fixtures.ScriptHash(5)
	engine.Current = h
	s.Snapshot.PutContract(fixtures.Contract(1, h, true))
	ctx := newWritableContext(engine)

	pushHandle(s, stackitem.HandleStorageContext, ctx)
	pushBytes(s, []byte("key"))
	pushBytes(s, []byte("value"))
	pushInteger(s, big.NewInt(int64(storage.FlagConstant)))
	require.True(t, StoragePutEx(s))

	pushHandle(s, stackitem.HandleStorageContext, ctx)
	pushBytes(s, []byte("key"))
	pushBytes(s, []byte("other"))
	require.False(t, StoragePut(s), "constant entries must reject further writes")
}

func TestStorageDeleteRemovesEntry(t *testing.T) {
	engine := fixtures.NewEngine(100000)
	s := newTestSession(engine)
	h := fixtures.ScriptHash(5)
	engine.Current = h
	s.Snapshot.PutContract(fixtures.Contract(1, h, true))
	ctx := newWritableContext(engine)

	pushHandle(s, stackitem.HandleStorageContext, ctx)
	pushBytes(s, []byte("key"))
	pushBytes(s, []byte("value"))
	require.True(t, StoragePut(s))

	pushHandle(s, stackitem.HandleStorageContext, ctx)
	pushBytes(s, []byte("key"))
	require.True(t, StorageDelete(s))

	pushHandle(s, stackitem.HandleStorageContext, ctx)
	pushBytes(s, []byte("key"))
	require.True(t, StorageGet(s))
	raw, ok := popByteArray(s)
	require.True(t, ok)
	require.Empty(t, raw)
}

func TestStorageContextAsReadOnlyPreservesScriptHash(t *testing.T) {
	engine := fixtures.NewEngine(1000)
	s := newTestSession(engine)
	ctx := storage.Context{ScriptHash: fixtures.ScriptHash(8)}

	pushHandle(s, stackitem.HandleStorageContext, ctx)
	require.True(t, StorageContextAsReadOnly(s))
	v, ok := popHandle(s, stackitem.HandleStorageContext)
	require.True(t, ok)
	ro := v.(storage.Context)
	require.True(t, ro.ReadOnly)
	require.Equal(t, ctx.ScriptHash, ro.ScriptHash)
}
