// Package registry implements the interop method registry (spec §4.1):
// dotted-name registration, 32-bit method-id derivation, and dispatch.
// It is deliberately generic over the context type a handler receives so
// that pkg/session (the concrete consumer) can depend on pkg/registry
// without pkg/registry depending back on pkg/session.
package registry

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/nspcc-dev/neo-interop/pkg/hash"
)

// Handler is a registered interop service. It reports success/failure per
// spec §7's binary ok/fail contract; argument popping and result pushing
// happen against ctx, whose shape is opaque to this package.
type Handler[T any] func(ctx T) bool

// Dispatched is notified after every successful Invoke, the hook
// pkg/metrics uses to count syscalls and observe gas spent — defined here,
// at point of use, so this package carries no dependency on pkg/metrics.
type Dispatched interface {
	ObserveDispatch(name string, price int64)
}

type entry[T any] struct {
	name     string
	handler  Handler[T]
	price    int64
	hasPrice bool
}

// Registry maps method identifiers to handlers and gas prices.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[uint32]*entry[T]
	observe Dispatched
}

// New returns an empty registry. observe may be nil if dispatch metrics are
// not needed (e.g. in unit tests).
func New[T any](observe Dispatched) *Registry[T] {
	return &Registry[T]{
		entries: make(map[uint32]*entry[T]),
		observe: observe,
	}
}

// MethodID computes the 32-bit identifier for a dotted service name: the
// first 4 bytes of double-SHA256(name), little-endian (spec §4.1).
func MethodID(name string) uint32 {
	sum := hash.Checksum([]byte(name))
	return binary.LittleEndian.Uint32(sum)
}

// Register associates name with handler and an optional gas price. hasPrice
// is false for variable-cost handlers that compute their own charge.
func (r *Registry[T]) Register(name string, handler Handler[T], price int64, hasPrice bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[MethodID(name)] = &entry[T]{name: name, handler: handler, price: price, hasPrice: hasPrice}
}

// Price returns the static price registered for id, if any.
func (r *Registry[T]) Price(id uint32) (int64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok || !e.hasPrice {
		return 0, false
	}
	return e.price, true
}

// DecodeMethodID reinterprets a raw method byte slice as a 32-bit
// identifier: direct little-endian reinterpretation when len(method) == 4,
// otherwise the hash-derived id (spec §4.1 "Invoke").
func DecodeMethodID(method []byte) uint32 {
	if len(method) == 4 {
		return binary.LittleEndian.Uint32(method)
	}
	return MethodID(string(method))
}

// Invoke dispatches method against ctx. A registry miss is a non-fatal
// false return; handler success/failure is propagated unchanged.
func (r *Registry[T]) Invoke(ctx T, method []byte) bool {
	id := DecodeMethodID(method)
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	ok = e.handler(ctx)
	if ok && r.observe != nil {
		r.observe.ObserveDispatch(e.name, e.price)
	}
	return ok
}

// Name returns the registered dotted name for id, for logging/debugging.
func (r *Registry[T]) Name(id uint32) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return "", false
	}
	return e.name, true
}

// ErrUnknownMethod names the "no handler registered" condition. No function
// in this package returns it; Invoke reports an unknown method by returning
// false.
var ErrUnknownMethod = errors.New("registry: unknown method")
