package stackitem

// Limits bounds the codec, per spec §3's invariants. The defaults match the
// reference MAX_ITEM_SIZE/MAX_ARRAY_SIZE constants.
type Limits struct {
	// MaxItemSize is the maximum total serialized byte length of a value.
	MaxItemSize int
	// MaxArraySize is the maximum element count of any single container
	// header, enforced during deserialization.
	MaxArraySize int
}

// DefaultLimits returns the reference limits: 1 MiB serialized size, 2^11
// elements per container header.
func DefaultLimits() Limits {
	return Limits{
		MaxItemSize:  1024 * 1024,
		MaxArraySize: 2048,
	}
}
