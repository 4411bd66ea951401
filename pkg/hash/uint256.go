package hash

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Uint256Size is the number of bytes in a Uint256.
const Uint256Size = 32

// Uint256 is a 256-bit ledger hash (block or transaction identity).
type Uint256 [Uint256Size]byte

// Uint256DecodeBytesBE decodes a big-endian byte slice into a Uint256.
func Uint256DecodeBytesBE(b []byte) (u Uint256, err error) {
	if len(b) != Uint256Size {
		return u, fmt.Errorf("expected %d bytes, got %d", Uint256Size, len(b))
	}
	for i := range b {
		u[Uint256Size-1-i] = b[i]
	}
	return u, nil
}

// Uint256DecodeBytesLE decodes a little-endian byte slice into a Uint256.
func Uint256DecodeBytesLE(b []byte) (u Uint256, err error) {
	if len(b) != Uint256Size {
		return u, fmt.Errorf("expected %d bytes, got %d", Uint256Size, len(b))
	}
	copy(u[:], b)
	return u, nil
}

// BytesBE returns the big-endian byte representation.
func (u Uint256) BytesBE() []byte {
	b := make([]byte, Uint256Size)
	for i := range u {
		b[Uint256Size-1-i] = u[i]
	}
	return b
}

// BytesLE returns the little-endian byte representation.
func (u Uint256) BytesLE() []byte {
	b := make([]byte, Uint256Size)
	copy(b, u[:])
	return b
}

// Equals reports whether two hashes are identical.
func (u Uint256) Equals(other Uint256) bool {
	return u == other
}

// Less orders two hashes lexicographically over their big-endian form.
func (u Uint256) Less(other Uint256) bool {
	return bytes.Compare(u.BytesBE(), other.BytesBE()) < 0
}

// StringBE renders the hash as a "0x"-prefixed big-endian hex string.
func (u Uint256) StringBE() string {
	return "0x" + hex.EncodeToString(u.BytesBE())
}

func (u Uint256) String() string {
	return u.StringBE()
}

// MarshalJSON renders the hash as its "0x"-prefixed big-endian hex string.
func (u Uint256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.StringBE() + `"`), nil
}

// UnmarshalJSON reverses MarshalJSON.
func (u *Uint256) UnmarshalJSON(data []byte) error {
	var s string
	if err := unquoteJSONString(data, &s); err != nil {
		return err
	}
	s = trimHexPrefix(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}
	decoded, err := Uint256DecodeBytesBE(b)
	if err != nil {
		return err
	}
	*u = decoded
	return nil
}
