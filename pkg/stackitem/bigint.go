package stackitem

import "math/big"

var bigOne = big.NewInt(1)

// IntegerToBytesLE renders v as a minimal two's-complement little-endian
// byte slice, the same payload Serialize writes for an Integer item.
// Exposed for callers that need the raw encoding without a full Item
// wrapper (e.g. pkg/syscall's height-or-hash argument decoding).
func IntegerToBytesLE(v *big.Int) []byte { return integerToBytesLE(v) }

// IntegerFromBytesLE parses a minimal two's-complement little-endian byte
// slice back into a *big.Int; the inverse of IntegerToBytesLE.
func IntegerFromBytesLE(le []byte) *big.Int { return integerFromBytesLE(le) }

// integerToBytesLE renders v as a minimal two's-complement little-endian
// byte slice. Zero encodes as an empty slice, per spec §4.2.
func integerToBytesLE(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{}
	}
	length := v.BitLen()/8 + 1
	for !fitsSigned(v, length) {
		length++
	}
	for length > 1 && fitsSigned(v, length-1) {
		length--
	}

	var be []byte
	if v.Sign() > 0 {
		be = v.Bytes()
	} else {
		mod := new(big.Int).Lsh(bigOne, uint(8*length))
		val := new(big.Int).Add(mod, v)
		be = val.Bytes()
	}
	// Left-pad the big-endian magnitude to the target length, then
	// reverse it into little-endian order.
	out := make([]byte, length)
	copy(out[length-len(be):], be)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// fitsSigned reports whether v fits in a two's-complement representation of
// the given byte length.
func fitsSigned(v *big.Int, length int) bool {
	bound := new(big.Int).Lsh(bigOne, uint(8*length-1))
	neg := new(big.Int).Neg(bound)
	return v.Cmp(neg) >= 0 && v.Cmp(bound) < 0
}

// integerFromBytesLE parses a minimal two's-complement little-endian byte
// slice back into a *big.Int. An empty slice decodes to zero.
func integerFromBytesLE(le []byte) *big.Int {
	if len(le) == 0 {
		return new(big.Int)
	}
	be := make([]byte, len(le))
	for i, b := range le {
		be[len(le)-1-i] = b
	}
	v := new(big.Int).SetBytes(be)
	if be[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(bigOne, uint(8*len(be)))
		v.Sub(v, mod)
	}
	return v
}
