package storage

import (
	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/state"
)

// Namespace is the narrow slice of a Snapshot this package needs: raw
// get/put/delete/seek over the flat (scriptHash||key) keyspace. Defined
// here, at point of use, rather than imported from pkg/snapshot, so this
// package stays usable against any backing store.
type Namespace interface {
	Get(key Key) (Item, bool)
	Put(key Key, item Item)
	Delete(key Key)
	// Seek invokes each for every entry whose encoded key has the given
	// prefix; iteration stops early if each returns false.
	Seek(prefix []byte, each func(key Key, item Item) bool)
}

// ContractLookup resolves a contract's metadata, the other half of the
// mutation gate (spec §4.3: "the contract identified by the context
// exists and has has_storage == true").
type ContractLookup interface {
	GetContract(h hash.Uint160) (*state.Contract, bool)
}

// Get returns the stored value, or the empty byte string when absent.
// Read-only contexts are accepted (spec §4.3 "Get semantics").
func Get(ns Namespace, ctx Context, key []byte) []byte {
	item, ok := ns.Get(Key{ScriptHash: ctx.ScriptHash, Key: key})
	if !ok {
		return []byte{}
	}
	return item.Value
}

// Put writes an entry, latching IsConstant when flags requests it. Fails
// per the five-way mutation gate in spec §4.3.
func Put(ns Namespace, contracts ContractLookup, trigger state.TriggerType, ctx Context, key, value []byte, flags PutFlags) error {
	if err := validateMutation(trigger, ctx, contracts, len(key)); err != nil {
		return err
	}
	k := Key{ScriptHash: ctx.ScriptHash, Key: key}
	if existing, ok := ns.Get(k); ok && existing.IsConstant {
		return ErrConstant
	}
	v := make([]byte, len(value))
	copy(v, value)
	ns.Put(k, Item{Value: v, IsConstant: flags.HasConstant()})
	return nil
}

// Delete removes an entry; fails if it is marked constant or the mutation
// gate rejects the call (spec §4.3 "Delete semantics").
func Delete(ns Namespace, contracts ContractLookup, trigger state.TriggerType, ctx Context, key []byte) error {
	if err := validateMutation(trigger, ctx, contracts, len(key)); err != nil {
		return err
	}
	k := Key{ScriptHash: ctx.ScriptHash, Key: key}
	if existing, ok := ns.Get(k); ok && existing.IsConstant {
		return ErrConstant
	}
	ns.Delete(k)
	return nil
}

func validateMutation(trigger state.TriggerType, ctx Context, contracts ContractLookup, keyLen int) error {
	if !trigger.IsApplication() {
		return ErrWrongTrigger
	}
	if keyLen > MaxKeySize {
		return ErrKeyTooLong
	}
	if ctx.ReadOnly {
		return ErrReadOnly
	}
	c, ok := contracts.GetContract(ctx.ScriptHash)
	if !ok || !c.HasStorage {
		return ErrNoStorage
	}
	return nil
}

// GetStorageContext succeeds only if contractsCreated records executing as
// the creator of target, returning a writable Context for target's
// partition (spec §4.3 "Contract.GetStorageContext" — the sole channel
// through which one script may mutate another script's storage).
func GetStorageContext(contractsCreated map[hash.Uint160]hash.Uint160, contracts ContractLookup, executing, target hash.Uint160) (Context, error) {
	creator, ok := contractsCreated[target]
	if !ok || !creator.Equals(executing) {
		return Context{}, ErrNotCreator
	}
	if _, ok := contracts.GetContract(target); !ok {
		return Context{}, ErrNoStorage
	}
	return Context{ScriptHash: target, ReadOnly: false}, nil
}

// PurgeContractStorage removes every entry belonging to h, the storage half
// of Contract.Destroy (spec §4.3; byte-order rationale in DESIGN.md).
func PurgeContractStorage(ns Namespace, h hash.Uint160) {
	var keys []Key
	ns.Seek(Prefix(h), func(k Key, _ Item) bool {
		keys = append(keys, k)
		return true
	})
	for _, k := range keys {
		ns.Delete(k)
	}
}
