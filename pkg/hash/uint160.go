// Package hash implements the fixed-width identifiers used throughout the
// interoperability layer: 160-bit script hashes and 256-bit ledger hashes.
package hash

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
)

// Uint160Size is the number of bytes in a Uint160.
const Uint160Size = 20

// AddressVersion is the NEO address version byte used by Address/DecodeAddress.
const AddressVersion = 0x35

// Uint160 is a 160-bit script hash, compared and ordered lexicographically
// and stored little-endian on the wire.
type Uint160 [Uint160Size]byte

// Uint160DecodeBytesBE decodes a big-endian byte slice into a Uint160.
func Uint160DecodeBytesBE(b []byte) (u Uint160, err error) {
	if len(b) != Uint160Size {
		return u, fmt.Errorf("expected %d bytes, got %d", Uint160Size, len(b))
	}
	for i := range b {
		u[Uint160Size-1-i] = b[i]
	}
	return u, nil
}

// Uint160DecodeBytesLE decodes a little-endian byte slice into a Uint160.
func Uint160DecodeBytesLE(b []byte) (u Uint160, err error) {
	if len(b) != Uint160Size {
		return u, fmt.Errorf("expected %d bytes, got %d", Uint160Size, len(b))
	}
	copy(u[:], b)
	return u, nil
}

// BytesBE returns the big-endian byte representation.
func (u Uint160) BytesBE() []byte {
	b := make([]byte, Uint160Size)
	for i := range u {
		b[Uint160Size-1-i] = u[i]
	}
	return b
}

// BytesLE returns the little-endian byte representation, the wire form used
// by StorageKey and everywhere else hashes cross the codec boundary.
func (u Uint160) BytesLE() []byte {
	b := make([]byte, Uint160Size)
	copy(b, u[:])
	return b
}

// Equals reports whether two hashes are identical.
func (u Uint160) Equals(other Uint160) bool {
	return u == other
}

// Less orders two hashes lexicographically over their big-endian form, as
// required for deterministic iteration (e.g. ContractsCreated dumps).
func (u Uint160) Less(other Uint160) bool {
	return bytes.Compare(u.BytesBE(), other.BytesBE()) < 0
}

// StringBE renders the hash as a "0x"-prefixed big-endian hex string.
func (u Uint160) StringBE() string {
	return "0x" + hex.EncodeToString(u.BytesBE())
}

func (u Uint160) String() string {
	return u.StringBE()
}

// MarshalJSON renders the hash as its "0x"-prefixed big-endian hex string,
// the form the reference Snapshot adapters persist and the debug CLI
// prints.
func (u Uint160) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.StringBE() + `"`), nil
}

// UnmarshalJSON reverses MarshalJSON.
func (u *Uint160) UnmarshalJSON(data []byte) error {
	var s string
	if err := unquoteJSONString(data, &s); err != nil {
		return err
	}
	decoded, err := uint160FromHexString(s)
	if err != nil {
		return err
	}
	*u = decoded
	return nil
}

func uint160FromHexString(s string) (Uint160, error) {
	s = trimHexPrefix(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return Uint160{}, fmt.Errorf("decode hex: %w", err)
	}
	return Uint160DecodeBytesBE(b)
}

// Checksum returns the first 4 bytes of double-SHA256(payload), the
// checksum scheme used throughout NEO's wire formats (spec §6, Crypto) —
// address checksums here, interop method identifiers in pkg/registry.
func Checksum(payload []byte) []byte {
	h1 := sha256.Sum256(payload)
	h2 := sha256.Sum256(h1[:])
	return h2[:4]
}

// Address renders the hash as a NEO base58check address.
func (u Uint160) Address() string {
	payload := make([]byte, 0, Uint160Size+1)
	payload = append(payload, AddressVersion)
	payload = append(payload, u.BytesBE()...)
	return base58.Encode(append(payload, Checksum(payload)...))
}

// DecodeAddress parses a NEO base58check address back into a Uint160.
func DecodeAddress(addr string) (Uint160, error) {
	raw, err := base58.Decode(addr)
	if err != nil {
		return Uint160{}, fmt.Errorf("base58 decode: %w", err)
	}
	if len(raw) != Uint160Size+1+4 {
		return Uint160{}, fmt.Errorf("unexpected decoded length %d", len(raw))
	}
	payload, sum := raw[:Uint160Size+1], raw[Uint160Size+1:]
	if !bytes.Equal(Checksum(payload), sum) {
		return Uint160{}, fmt.Errorf("checksum mismatch")
	}
	if payload[0] != AddressVersion {
		return Uint160{}, fmt.Errorf("unexpected address version 0x%02x", payload[0])
	}
	return Uint160DecodeBytesBE(payload[1:])
}
