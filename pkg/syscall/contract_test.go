package syscall

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nspcc-dev/neo-interop/internal/fixtures"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
	"github.com/nspcc-dev/neo-interop/pkg/state"
	"github.com/nspcc-dev/neo-interop/pkg/storage"
)

func TestContractDestroyPurgesStorageAndMetadata(t *testing.T) {
	engine := fixtures.NewEngine(1000)
	s := newTestSession(engine)
	c := fixtures.Contract(1, fixtures.ScriptHash(4), true)
	s.Snapshot.PutContract(c)
	s.Snapshot.Storage().Put(storage.Key{ScriptHash: c.Hash, Key: []byte("k")}, storage.Item{Value: []byte("v")})

	pushHandle(s, stackitem.HandleContract, c)
	require.True(t, ContractDestroy(s))

	_, ok := s.Snapshot.GetContract(c.Hash)
	require.False(t, ok)
	_, ok = s.Snapshot.Storage().Get(storage.Key{ScriptHash: c.Hash, Key: []byte("k")})
	require.False(t, ok)
}

func TestContractDestroyFailsUnderVerificationTrigger(t *testing.T) {
	engine := fixtures.NewEngine(1000)
	s := newTestSessionWithTrigger(state.TriggerVerification, engine)
	c := fixtures.Contract(1, fixtures.ScriptHash(4), true)
	s.Snapshot.PutContract(c)
	s.Snapshot.Storage().Put(storage.Key{ScriptHash: c.Hash, Key: []byte("k")}, storage.Item{Value: []byte("v")})

	pushHandle(s, stackitem.HandleContract, c)
	require.False(t, ContractDestroy(s))

	_, ok := s.Snapshot.GetContract(c.Hash)
	require.True(t, ok, "contract metadata must survive a rejected destroy")
	_, ok = s.Snapshot.Storage().Get(storage.Key{ScriptHash: c.Hash, Key: []byte("k")})
	require.True(t, ok, "storage must survive a rejected destroy")
}

func TestContractGetStorageContextSucceedsForCreator(t *testing.T) {
	engine := fixtures.NewEngine(1000)
	s := newTestSession(engine)
	creator := fixtures.ScriptHash(1)
	c := fixtures.Contract(1, fixtures.ScriptHash(2), true)
	s.Snapshot.PutContract(c)
	s.AddContractCreated(c.Hash, creator)
	engine.Current = creator

	pushHandle(s, stackitem.HandleContract, c)
	require.True(t, ContractGetStorageContext(s))
	v, ok := popHandle(s, stackitem.HandleStorageContext)
	require.True(t, ok)
	ctx := v.(storage.Context)
	require.Equal(t, c.Hash, ctx.ScriptHash)
	require.False(t, ctx.ReadOnly)
}

func TestContractGetStorageContextFailsForNonCreator(t *testing.T) {
	engine := fixtures.NewEngine(1000)
	s := newTestSession(engine)
	c := fixtures.Contract(1, fixtures.ScriptHash(2), true)
	s.Snapshot.PutContract(c)
	s.AddContractCreated(c.Hash, fixtures.ScriptHash(1))
	engine.Current = fixtures.ScriptHash(9)

	pushHandle(s, stackitem.HandleContract, c)
	require.False(t, ContractGetStorageContext(s))
}
