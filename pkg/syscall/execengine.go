package syscall

import (
	"github.com/nspcc-dev/neo-interop/pkg/session"
)

// GetScriptContainer pushes the enclosing transaction/block handle.
func GetScriptContainer(s *session.Session) bool {
	s.Engine.Push(s.Engine.ScriptContainer())
	return true
}

// GetExecutingScriptHash pushes the currently executing script's hash.
func GetExecutingScriptHash(s *session.Session) bool {
	pushBytes(s, s.Engine.CurrentScriptHash().BytesLE())
	return true
}

// GetCallingScriptHash pushes the calling context's script hash.
func GetCallingScriptHash(s *session.Session) bool {
	pushBytes(s, s.Engine.CallingScriptHash().BytesLE())
	return true
}

// GetEntryScriptHash pushes the entry context's script hash.
func GetEntryScriptHash(s *session.Session) bool {
	pushBytes(s, s.Engine.EntryScriptHash().BytesLE())
	return true
}
