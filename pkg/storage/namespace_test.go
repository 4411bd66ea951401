package storage

import (
	"bytes"
	"testing"

	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/state"
	"github.com/stretchr/testify/require"
)

type fakeNamespace struct {
	items map[string]Item
}

func newFakeNamespace() *fakeNamespace {
	return &fakeNamespace{items: make(map[string]Item)}
}

func (f *fakeNamespace) Get(key Key) (Item, bool) {
	it, ok := f.items[string(key.Encode())]
	return it, ok
}

func (f *fakeNamespace) Put(key Key, item Item) {
	f.items[string(key.Encode())] = item
}

func (f *fakeNamespace) Delete(key Key) {
	delete(f.items, string(key.Encode()))
}

func (f *fakeNamespace) Seek(prefix []byte, each func(Key, Item) bool) {
	for k, v := range f.items {
		if bytes.HasPrefix([]byte(k), prefix) {
			key, err := DecodeKey([]byte(k))
			if err != nil {
				continue
			}
			if !each(key, v) {
				return
			}
		}
	}
}

type fakeContracts struct {
	contracts map[hash.Uint160]*state.Contract
}

func (f *fakeContracts) GetContract(h hash.Uint160) (*state.Contract, bool) {
	c, ok := f.contracts[h]
	return c, ok
}

func testScriptHash(b byte) hash.Uint160 {
	var h hash.Uint160
	h[0] = b
	return h
}

func TestPutThenGet(t *testing.T) {
	ns := newFakeNamespace()
	h := testScriptHash(1)
	contracts := &fakeContracts{contracts: map[hash.Uint160]*state.Contract{
		h: {Hash: h, HasStorage: true},
	}}
	ctx := Context{ScriptHash: h}

	require.NoError(t, Put(ns, contracts, state.TriggerApplication, ctx, []byte("k"), []byte("v"), 0))
	require.Equal(t, []byte("v"), Get(ns, ctx, []byte("k")))
}

func TestPutExConstantThenPutFails(t *testing.T) {
	ns := newFakeNamespace()
	h := testScriptHash(2)
	contracts := &fakeContracts{contracts: map[hash.Uint160]*state.Contract{
		h: {Hash: h, HasStorage: true},
	}}
	ctx := Context{ScriptHash: h}

	require.NoError(t, Put(ns, contracts, state.TriggerApplication, ctx, []byte("k"), []byte("v"), FlagConstant))
	err := Put(ns, contracts, state.TriggerApplication, ctx, []byte("k"), []byte("v2"), 0)
	require.ErrorIs(t, err, ErrConstant)
	require.Equal(t, []byte("v"), Get(ns, ctx, []byte("k")))
}

func TestDeleteConstantFails(t *testing.T) {
	ns := newFakeNamespace()
	h := testScriptHash(3)
	contracts := &fakeContracts{contracts: map[hash.Uint160]*state.Contract{
		h: {Hash: h, HasStorage: true},
	}}
	ctx := Context{ScriptHash: h}
	require.NoError(t, Put(ns, contracts, state.TriggerApplication, ctx, []byte("k"), []byte("v"), FlagConstant))
	require.ErrorIs(t, Delete(ns, contracts, state.TriggerApplication, ctx, []byte("k")), ErrConstant)
}

func TestDeleteThenGetEmpty(t *testing.T) {
	ns := newFakeNamespace()
	h := testScriptHash(4)
	contracts := &fakeContracts{contracts: map[hash.Uint160]*state.Contract{
		h: {Hash: h, HasStorage: true},
	}}
	ctx := Context{ScriptHash: h}
	require.NoError(t, Put(ns, contracts, state.TriggerApplication, ctx, []byte("k"), []byte("v"), 0))
	require.NoError(t, Delete(ns, contracts, state.TriggerApplication, ctx, []byte("k")))
	require.Equal(t, []byte{}, Get(ns, ctx, []byte("k")))
}

func TestPutFromReadOnlyContextFails(t *testing.T) {
	ns := newFakeNamespace()
	h := testScriptHash(5)
	contracts := &fakeContracts{contracts: map[hash.Uint160]*state.Contract{
		h: {Hash: h, HasStorage: true},
	}}
	ctx := Context{ScriptHash: h}.AsReadOnly()
	require.ErrorIs(t, Put(ns, contracts, state.TriggerApplication, ctx, []byte("k"), []byte("v"), 0), ErrReadOnly)
}

func TestPutKeyBoundary(t *testing.T) {
	ns := newFakeNamespace()
	h := testScriptHash(6)
	contracts := &fakeContracts{contracts: map[hash.Uint160]*state.Contract{
		h: {Hash: h, HasStorage: true},
	}}
	ctx := Context{ScriptHash: h}

	key1024 := bytes.Repeat([]byte{0x01}, MaxKeySize)
	require.NoError(t, Put(ns, contracts, state.TriggerApplication, ctx, key1024, []byte("v"), 0))

	key1025 := bytes.Repeat([]byte{0x01}, MaxKeySize+1)
	require.ErrorIs(t, Put(ns, contracts, state.TriggerApplication, ctx, key1025, []byte("v"), 0), ErrKeyTooLong)
}

func TestPutWrongTriggerFails(t *testing.T) {
	ns := newFakeNamespace()
	h := testScriptHash(7)
	contracts := &fakeContracts{contracts: map[hash.Uint160]*state.Contract{
		h: {Hash: h, HasStorage: true},
	}}
	ctx := Context{ScriptHash: h}
	require.ErrorIs(t, Put(ns, contracts, state.TriggerVerification, ctx, []byte("k"), []byte("v"), 0), ErrWrongTrigger)
}

func TestCrossContractIsolation(t *testing.T) {
	ns := newFakeNamespace()
	a := testScriptHash(0xA)
	b := testScriptHash(0xB)
	contracts := &fakeContracts{contracts: map[hash.Uint160]*state.Contract{
		a: {Hash: a, HasStorage: true},
		b: {Hash: b, HasStorage: true},
	}}

	ctxB := Context{ScriptHash: b}
	require.NoError(t, Put(ns, contracts, state.TriggerApplication, ctxB, []byte("k"), []byte("from-b"), 0))

	// A's own context cannot write into B's partition: A's context is
	// scoped to A's own script hash, so a Put "against B" from A's code
	// is really just a Put into A's own partition unless A obtained a
	// Context for B via GetStorageContext.
	ctxA := Context{ScriptHash: a}
	require.NoError(t, Put(ns, contracts, state.TriggerApplication, ctxA, []byte("k"), []byte("from-a"), 0))

	require.Equal(t, []byte("from-b"), Get(ns, ctxB, []byte("k")))
	require.Equal(t, []byte("from-a"), Get(ns, ctxA, []byte("k")))
}

func TestGetStorageContextRequiresCreator(t *testing.T) {
	a := testScriptHash(0xC)
	b := testScriptHash(0xD)
	target := testScriptHash(0xE)
	contracts := &fakeContracts{contracts: map[hash.Uint160]*state.Contract{
		target: {Hash: target, HasStorage: true},
	}}
	created := map[hash.Uint160]hash.Uint160{target: a}

	ctx, err := GetStorageContext(created, contracts, a, target)
	require.NoError(t, err)
	require.Equal(t, target, ctx.ScriptHash)
	require.False(t, ctx.ReadOnly)

	_, err = GetStorageContext(created, contracts, b, target)
	require.ErrorIs(t, err, ErrNotCreator)
}

func TestGetStorageContextThenWriteLandsInTargetPartition(t *testing.T) {
	ns := newFakeNamespace()
	a := testScriptHash(0xF)
	target := testScriptHash(0x10)
	contracts := &fakeContracts{contracts: map[hash.Uint160]*state.Contract{
		target: {Hash: target, HasStorage: true},
	}}
	created := map[hash.Uint160]hash.Uint160{target: a}

	ctx, err := GetStorageContext(created, contracts, a, target)
	require.NoError(t, err)
	require.NoError(t, Put(ns, contracts, state.TriggerApplication, ctx, []byte("k"), []byte("v"), 0))
	require.Equal(t, []byte("v"), Get(ns, Context{ScriptHash: target}, []byte("k")))
}

func TestPurgeContractStorage(t *testing.T) {
	ns := newFakeNamespace()
	h := testScriptHash(0x11)
	other := testScriptHash(0x12)
	contracts := &fakeContracts{contracts: map[hash.Uint160]*state.Contract{
		h:     {Hash: h, HasStorage: true},
		other: {Hash: other, HasStorage: true},
	}}
	ctx := Context{ScriptHash: h}
	ctxOther := Context{ScriptHash: other}
	require.NoError(t, Put(ns, contracts, state.TriggerApplication, ctx, []byte("k1"), []byte("v1"), 0))
	require.NoError(t, Put(ns, contracts, state.TriggerApplication, ctx, []byte("k2"), []byte("v2"), 0))
	require.NoError(t, Put(ns, contracts, state.TriggerApplication, ctxOther, []byte("k1"), []byte("untouched"), 0))

	PurgeContractStorage(ns, h)

	require.Equal(t, []byte{}, Get(ns, ctx, []byte("k1")))
	require.Equal(t, []byte{}, Get(ns, ctx, []byte("k2")))
	require.Equal(t, []byte("untouched"), Get(ns, ctxOther, []byte("k1")))
}
