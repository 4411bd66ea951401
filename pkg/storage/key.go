// Package storage implements the per-contract key/value partition model:
// StorageKey/StorageItem, StorageContext capabilities, and the mutation
// gating rules spec §4.3 requires. The concrete key-value engine is out of
// scope (spec §1) — see pkg/snapshot for the abstract façade and its
// reference adapters.
package storage

import (
	"github.com/nspcc-dev/neo-interop/pkg/hash"
)

// MaxKeySize is the maximum allowed length of a StorageKey's Key bytes
// (spec §3).
const MaxKeySize = 1024

// Key identifies one entry within a contract's storage partition.
type Key struct {
	ScriptHash hash.Uint160
	Key        []byte
}

// Encode renders the key as it appears on the wire / in the concrete
// engine: the script hash in its little-endian wire form (spec §3 "stored
// little-endian on the wire") followed by the raw key bytes. This makes a
// prefix scan for "every entry belonging to contract H" a plain byte-prefix
// match, the property Contract.Destroy's storage purge relies on (spec §9
// OQ, see DESIGN.md).
func (k Key) Encode() []byte {
	buf := make([]byte, hash.Uint160Size+len(k.Key))
	copy(buf, k.ScriptHash.BytesLE())
	copy(buf[hash.Uint160Size:], k.Key)
	return buf
}

// Prefix returns the byte prefix identifying every key belonging to h,
// independent of the per-key suffix.
func Prefix(h hash.Uint160) []byte {
	return h.BytesLE()
}

// DecodeKey reverses Encode, used by reference Snapshot adapters when
// reading raw engine records back into a typed Key.
func DecodeKey(buf []byte) (Key, error) {
	h, err := hash.Uint160DecodeBytesLE(buf[:hash.Uint160Size])
	if err != nil {
		return Key{}, err
	}
	rest := make([]byte, len(buf)-hash.Uint160Size)
	copy(rest, buf[hash.Uint160Size:])
	return Key{ScriptHash: h, Key: rest}, nil
}

// Item is the stored value: raw bytes plus the constant latch (spec §3).
// Once IsConstant is true, the entry may neither be rewritten nor deleted.
type Item struct {
	Value      []byte
	IsConstant bool
}

// PutFlags is the bitmask Storage.Put/PutEx accept. Bit 0 is Constant; no
// other bit is currently defined, but the type is a bitmask rather than a
// bare bool so a future flag is additive (spec §4.3, "a flag value
// Constant (bit 0)").
type PutFlags byte

// FlagConstant latches IsConstant on the written entry.
const FlagConstant PutFlags = 1 << 0

// HasConstant reports whether the Constant bit is set.
func (f PutFlags) HasConstant() bool {
	return f&FlagConstant != 0
}
