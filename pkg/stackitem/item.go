// Package stackitem implements the tagged StackValue universe that the VM
// pushes and pops, and its deterministic binary codec. Both the value model
// and the codec are consensus-critical: any divergence from this encoding
// between nodes is a hard fork, see spec §4.2.
package stackitem

import (
	"math/big"
)

// Type identifies the concrete kind of an Item, matching the wire tag bytes
// in encode.go one-to-one (InteropHandle never appears on the wire, but
// still has a Type for switch exhaustiveness).
type Type byte

const (
	// TypeByteArray tags raw octets.
	TypeByteArray Type = 0x00
	// TypeBoolean tags a one-byte truth value.
	TypeBoolean Type = 0x01
	// TypeInteger tags an arbitrary-precision signed integer.
	TypeInteger Type = 0x02
	// TypeInteropHandle tags an opaque host-object reference; never
	// serializable.
	TypeInteropHandle Type = 0x40
	// TypeArray tags an ordered, mutable sequence.
	TypeArray Type = 0x80
	// TypeStruct tags an ordered, mutable sequence distinguished from
	// Array only by this tag.
	TypeStruct Type = 0x81
	// TypeMap tags an insertion-ordered sequence of key/value pairs.
	TypeMap Type = 0x82
)

func (t Type) String() string {
	switch t {
	case TypeByteArray:
		return "ByteArray"
	case TypeBoolean:
		return "Boolean"
	case TypeInteger:
		return "Integer"
	case TypeInteropHandle:
		return "InteropHandle"
	case TypeArray:
		return "Array"
	case TypeStruct:
		return "Struct"
	case TypeMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// Item is the closed sum type every StackValue belongs to. A small,
// exhaustively-switched interface rather than open dynamic dispatch, per
// spec §9 ("Tagged variants").
type Item interface {
	// Type reports the concrete kind.
	Type() Type
	// Bool renders the item's canonical truth value, used when a
	// non-Boolean item is consumed where the VM expects a condition.
	Bool() bool
}

// ByteArray is raw octets.
type ByteArray []byte

// Type implements Item.
func (ByteArray) Type() Type { return TypeByteArray }

// Bool reports true iff the array is non-empty and not all-zero, matching
// the VM's usual "truthy bytes" rule.
func (b ByteArray) Bool() bool {
	for _, c := range b {
		if c != 0 {
			return true
		}
	}
	return false
}

// Boolean is a truth value. Serialized, it is the 0x01 tag followed by a
// one-byte body: 0x01 for true, 0x00 for false.
type Boolean bool

// Type implements Item.
func (Boolean) Type() Type { return TypeBoolean }

// Bool implements Item.
func (b Boolean) Bool() bool { return bool(b) }

// Integer is an arbitrary-precision signed integer.
type Integer struct {
	Value *big.Int
}

// NewInteger wraps a *big.Int (or nil, treated as zero) as an Integer item.
func NewInteger(v *big.Int) Integer {
	if v == nil {
		v = new(big.Int)
	}
	return Integer{Value: v}
}

// NewIntegerFromInt64 is a convenience constructor for small integers.
func NewIntegerFromInt64(v int64) Integer {
	return Integer{Value: big.NewInt(v)}
}

// Type implements Item.
func (Integer) Type() Type { return TypeInteger }

// Bool implements Item.
func (i Integer) Bool() bool { return i.Value.Sign() != 0 }

// Array is an ordered, mutable sequence that may contain references forming
// cycles (forbidden only at serialization time, not at construction time).
type Array struct {
	Value []Item
}

// NewArray wraps a slice of items as an Array.
func NewArray(items []Item) *Array {
	return &Array{Value: items}
}

// Type implements Item.
func (*Array) Type() Type { return TypeArray }

// Bool implements Item.
func (*Array) Bool() bool { return true }

// Struct is exactly like Array but distinguished by its wire tag.
type Struct struct {
	Value []Item
}

// NewStruct wraps a slice of items as a Struct.
func NewStruct(items []Item) *Struct {
	return &Struct{Value: items}
}

// Type implements Item.
func (*Struct) Type() Type { return TypeStruct }

// Bool implements Item.
func (*Struct) Bool() bool { return true }

// MapPair is one insertion-ordered (key, value) entry of a Map.
type MapPair struct {
	Key   Item
	Value Item
}

// Map is an insertion-ordered sequence of (key, value) pairs; keys must be
// non-container items (ByteArray, Boolean, or Integer).
type Map struct {
	Value []MapPair
}

// NewMap builds an empty Map.
func NewMap() *Map {
	return &Map{}
}

// Type implements Item.
func (*Map) Type() Type { return TypeMap }

// Bool implements Item.
func (*Map) Bool() bool { return true }

// Add appends a (key, value) pair, preserving insertion order. Replacing an
// existing key is the caller's responsibility (Set does that).
func (m *Map) Add(key, value Item) {
	m.Value = append(m.Value, MapPair{Key: key, Value: value})
}

// Set inserts or overwrites key's value, preserving the original insertion
// position on overwrite.
func (m *Map) Set(key, value Item) {
	for i := range m.Value {
		if Equals(m.Value[i].Key, key) {
			m.Value[i].Value = value
			return
		}
	}
	m.Add(key, value)
}

// Get looks up a key by structural equality, returning (value, true) on hit.
func (m *Map) Get(key Item) (Item, bool) {
	for _, p := range m.Value {
		if Equals(p.Key, key) {
			return p.Value, true
		}
	}
	return nil, false
}

// HandleKind discriminates the concrete host-object kind an InteropHandle
// refers to, per spec §9 ("Interop-handle polymorphism").
type HandleKind byte

const (
	HandleHeader HandleKind = iota
	HandleBlock
	HandleTransaction
	HandleContract
	HandleStorageContext
	HandleScriptContainer
)

// InteropHandle is a typed reference to a host object. Never serializable;
// attempting to do so fails with kind NotSupported (spec §4.2).
type InteropHandle struct {
	Kind  HandleKind
	Value interface{}
}

// Type implements Item.
func (InteropHandle) Type() Type { return TypeInteropHandle }

// Bool implements Item.
func (InteropHandle) Bool() bool { return true }

// Equals reports structural equality between two items, used by Map.Get/Set
// and by round-trip tests. Containers compare element-wise; InteropHandle
// compares by identity of its wrapped value.
func Equals(a, b Item) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case ByteArray:
		bv := b.(ByteArray)
		return string(av) == string(bv)
	case Boolean:
		return av == b.(Boolean)
	case Integer:
		return av.Value.Cmp(b.(Integer).Value) == 0
	case *Array:
		bv := b.(*Array)
		return equalSlices(av.Value, bv.Value)
	case *Struct:
		bv := b.(*Struct)
		return equalSlices(av.Value, bv.Value)
	case *Map:
		bv := b.(*Map)
		if len(av.Value) != len(bv.Value) {
			return false
		}
		for i := range av.Value {
			if !Equals(av.Value[i].Key, bv.Value[i].Key) || !Equals(av.Value[i].Value, bv.Value[i].Value) {
				return false
			}
		}
		return true
	case InteropHandle:
		bv := b.(InteropHandle)
		return av.Kind == bv.Kind && av.Value == bv.Value
	default:
		return false
	}
}

func equalSlices(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equals(a[i], b[i]) {
			return false
		}
	}
	return true
}
