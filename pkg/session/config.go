package session

import "github.com/nspcc-dev/neo-interop/pkg/stackitem"

// Config bundles the per-session tunables spec §3/§6 fixes as implementation
// constants: the codec's size caps and the block-time fallback used by
// Runtime.GetTime. Constructed in code by the VM host, mirroring how the
// teacher's tests/helpers.go builds fixtures in code rather than from a
// config file — this spec has no notion of a standalone daemon.
type Config struct {
	MaxItemSize     int
	MaxArraySize    int
	SecondsPerBlock uint64
	// PriceOverrides replaces the registry's static price for a dotted
	// method name, read by Session.Invoke when the caller dispatches by
	// name rather than by raw method id. Lets tests exercise the
	// gas-budget-exhausted path without enormous fixtures.
	PriceOverrides map[string]int64
	// StoragePricePerByte is Storage.Put/PutEx's per-byte surcharge (spec
	// §6 "Storage.Put/PutEx (variable)"), following the native Policy
	// contract's getStoragePrice() convention: total cost is a base price
	// plus this rate times the written key+value length.
	StoragePricePerByte int64
}

// DefaultConfig returns the production defaults: codec limits from
// pkg/stackitem.DefaultLimits, a 15-second block interval, and a storage
// price of 100 per written key+value byte.
func DefaultConfig() Config {
	limits := stackitem.DefaultLimits()
	return Config{
		MaxItemSize:         limits.MaxItemSize,
		MaxArraySize:        limits.MaxArraySize,
		SecondsPerBlock:     15,
		StoragePricePerByte: 100,
	}
}

// Limits projects the codec-relevant fields as a stackitem.Limits value.
func (c Config) Limits() stackitem.Limits {
	return stackitem.Limits{MaxItemSize: c.MaxItemSize, MaxArraySize: c.MaxArraySize}
}
