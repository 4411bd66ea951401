package runtimesvc

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // mirrors the production hash chain under independent construction.

	"github.com/stretchr/testify/require"

	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/registry"
)

func TestCheckWitnessTwentyByteHash(t *testing.T) {
	var h, other hash.Uint160
	h[0] = 1
	other[0] = 2

	ok, err := CheckWitness(h.BytesLE(), []hash.Uint160{h})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = CheckWitness(other.BytesLE(), []hash.Uint160{h})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCheckWitnessWrongLengthFails(t *testing.T) {
	var h hash.Uint160
	h[0] = 1
	scalar := append(h.BytesLE(), 0x00)
	require.Len(t, scalar, hash.Uint160Size+1)

	_, err := CheckWitness(scalar, []hash.Uint160{h})
	require.Error(t, err)
}

func TestCheckWitnessPublicKeyDerivesScriptHash(t *testing.T) {
	pubkey := make([]byte, PublicKeySize)
	pubkey[0] = 0x02
	for i := 1; i < PublicKeySize; i++ {
		pubkey[i] = byte(i)
	}

	derived, err := ScriptHashFromPublicKey(pubkey)
	require.NoError(t, err)

	ok, err := CheckWitness(pubkey, []hash.Uint160{derived})
	require.NoError(t, err)
	require.True(t, ok)

	var unrelated hash.Uint160
	unrelated[0] = 0xFF
	ok, err = CheckWitness(pubkey, []hash.Uint160{unrelated})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestScriptHashFromPublicKeyRejectsWrongLength(t *testing.T) {
	_, err := ScriptHashFromPublicKey(make([]byte, 32))
	require.Error(t, err)
}

// TestScriptHashFromPublicKeyMatchesIndependentlyBuiltRedeemScript builds
// the single-signature verification script by hand, from the witness law's
// own description (PUSHDATA1 <len> <pubkey> SYSCALL <method id>), rather
// than by calling any helper the production code shares, and checks the
// two hashes agree. This is the independent vector the self-consistency
// checks above don't provide.
func TestScriptHashFromPublicKeyMatchesIndependentlyBuiltRedeemScript(t *testing.T) {
	pubkey := make([]byte, PublicKeySize)
	pubkey[0] = 0x03
	for i := 1; i < PublicKeySize; i++ {
		pubkey[i] = byte(2 * i)
	}

	var methodID [4]byte
	binary.LittleEndian.PutUint32(methodID[:], registry.MethodID("System.Crypto.CheckSig"))

	script := append([]byte{0x0C, byte(len(pubkey))}, pubkey...)
	script = append(script, 0x41)
	script = append(script, methodID[:]...)

	sha := sha256.Sum256(script)
	r := ripemd160.New()
	_, _ = r.Write(sha[:])
	want, err := hash.Uint160DecodeBytesLE(r.Sum(nil))
	require.NoError(t, err)

	got, err := ScriptHashFromPublicKey(pubkey)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
