package runtimesvc

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // the exact legacy hash CheckWitness's script-hash derivation requires.

	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/registry"
)

// PublicKeySize is the length of a compressed secp256r1 point, the other
// accepted shape for Runtime.CheckWitness's scalar argument (spec §4.4).
const PublicKeySize = 33

// opPushData1 and opSyscall are the two VM opcodes a single-signature
// verification script is built from: push the public key, then invoke the
// signature-check interop service.
const (
	opPushData1 byte = 0x0C
	opSyscall   byte = 0x41
)

// checkSigMethod is the dotted service name a single-signature verification
// script invokes over the pushed public key.
const checkSigMethod = "System.Crypto.CheckSig"

// singleSigScript builds the verification script the witness law's
// single_sig_script(p) names: PUSHDATA1 <len> <pubkey> SYSCALL <method id>,
// the standard one-key "can this account sign" redeem script.
func singleSigScript(pubkey []byte) []byte {
	script := make([]byte, 0, 2+len(pubkey)+5)
	script = append(script, opPushData1, byte(len(pubkey)))
	script = append(script, pubkey...)
	script = append(script, opSyscall)
	var id [4]byte
	binary.LittleEndian.PutUint32(id[:], registry.MethodID(checkSigMethod))
	return append(script, id[:]...)
}

// ScriptHashFromPublicKey derives the single-signature verification
// script's hash for a compressed secp256r1 public key: the witness law's
// CheckWitness(p) = CheckWitness(hash_of(single_sig_script(p))), computed
// as RIPEMD160(SHA256(script)) over the constructed redeem script rather
// than the raw public key bytes.
func ScriptHashFromPublicKey(pubkey []byte) (hash.Uint160, error) {
	if len(pubkey) != PublicKeySize {
		return hash.Uint160{}, fmt.Errorf("expected %d-byte compressed public key, got %d", PublicKeySize, len(pubkey))
	}
	sha := sha256.Sum256(singleSigScript(pubkey))
	r := ripemd160.New()
	_, _ = r.Write(sha[:])
	return hash.Uint160DecodeBytesLE(r.Sum(nil))
}

// ScalarToScriptHash resolves Runtime.CheckWitness's scalar argument to a
// script hash: a 20-byte hash is used directly, a 33-byte compressed
// public key is converted to its single-signature script hash first. Any
// other length fails (the "witness law" in spec §8).
func ScalarToScriptHash(scalar []byte) (hash.Uint160, error) {
	switch len(scalar) {
	case hash.Uint160Size:
		return hash.Uint160DecodeBytesLE(scalar)
	case PublicKeySize:
		return ScriptHashFromPublicKey(scalar)
	default:
		return hash.Uint160{}, fmt.Errorf("checkwitness: unexpected scalar length %d", len(scalar))
	}
}

// CheckWitness implements spec §4.4's Runtime.CheckWitness over an
// explicit required-signer set, used directly by this package's own tests;
// pkg/syscall's handler instead checks membership against the script
// container's own RequiresSignatureFrom, since a container only exposes
// that predicate rather than the raw signer slice.
func CheckWitness(scalar []byte, requiredSigners []hash.Uint160) (bool, error) {
	h, err := ScalarToScriptHash(scalar)
	if err != nil {
		return false, err
	}
	for _, signer := range requiredSigners {
		if signer.Equals(h) {
			return true, nil
		}
	}
	return false, nil
}
