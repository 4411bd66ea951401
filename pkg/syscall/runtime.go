package syscall

import (
	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/runtimesvc"
	"github.com/nspcc-dev/neo-interop/pkg/session"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
	"github.com/nspcc-dev/neo-interop/pkg/state"
)

// platformName is the wire constant System.Runtime.Platform pushes (spec
// §6: "externally observable and must not change").
const platformName = "NEO"

// Platform pushes the constant ASCII string "NEO".
func Platform(s *session.Session) bool {
	pushBytes(s, []byte(platformName))
	return true
}

// GetTrigger pushes the trigger kind as an integer.
func GetTrigger(s *session.Session) bool {
	pushInt64(s, int64(s.Trigger))
	return true
}

// CheckWitness accepts a 20-byte script hash or a 33-byte compressed
// public key and reports whether it is among the script container's
// required signers (spec §4.4, the "witness law" of spec §8). Only a
// *state.Transaction declares required signers; any other container
// (e.g. a block, during GetScriptContainer on a block trigger) fails.
func CheckWitness(s *session.Session) bool {
	scalar, ok := popByteArray(s)
	if !ok {
		return false
	}
	tx, ok := s.Engine.ScriptContainer().Value.(*state.Transaction)
	if !ok {
		return false
	}
	h, err := runtimesvc.ScalarToScriptHash(scalar)
	if err != nil {
		return false
	}
	pushBool(s, tx.RequiresSignatureFrom(h))
	return true
}

// containerHashOf extracts the enclosing container's identity hash,
// needed to stamp a notification's ScriptContainer field.
func containerHashOf(h stackitem.InteropHandle) hash.Uint256 {
	switch v := h.Value.(type) {
	case *state.Transaction:
		return v.Hash
	case *state.Block:
		return v.Hash
	default:
		return hash.Uint256{}
	}
}

// Notify pops one stack value, records it as a notification alongside the
// executing script hash and container, and fires an observer event. Fails
// only when the stack is empty.
func Notify(s *session.Session) bool {
	payload, ok := s.Engine.Pop()
	if !ok {
		return false
	}
	n := runtimesvc.BuildNotification(containerHashOf(s.Engine.ScriptContainer()), s.Engine.CurrentScriptHash(), payload)
	s.AddNotification(n)
	return true
}

// Log pops one byte string interpreted as UTF-8 and fires an observer
// event; bytes that are not valid UTF-8 are passed on as they are. Fails
// when the stack is empty or its top item is not a byte string.
func Log(s *session.Session) bool {
	raw, ok := popByteArray(s)
	if !ok {
		return false
	}
	message, err := runtimesvc.DecodeLogMessage(raw)
	if err != nil {
		message = string(raw)
	}
	s.Observers.Log(s.Engine.CurrentScriptHash(), message)
	return true
}

// GetTime delegates to runtimesvc.GetTime over the session's snapshot.
func GetTime(s *session.Session) bool {
	persisting, _ := s.Snapshot.PersistingBlock()
	bestHeader, _ := s.Snapshot.BestHeader()
	pushInt64(s, int64(runtimesvc.GetTime(s.Clock, persisting, bestHeader, s.Config.SecondsPerBlock)))
	return true
}

// Serialize delegates to stackitem.Serialize.
func Serialize(s *session.Session) bool {
	item, ok := s.Engine.Pop()
	if !ok {
		return false
	}
	encoded, err := stackitem.Serialize(item, s.Config.Limits())
	if err != nil {
		return false
	}
	pushBytes(s, encoded)
	return true
}

// Deserialize delegates to stackitem.Deserialize.
func Deserialize(s *session.Session) bool {
	raw, ok := popByteArray(s)
	if !ok {
		return false
	}
	item, err := stackitem.Deserialize(raw, s.Config.Limits())
	if err != nil {
		return false
	}
	s.Engine.Push(item)
	return true
}
