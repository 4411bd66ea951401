package syscall

import (
	"github.com/nspcc-dev/neo-interop/pkg/session"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
	"github.com/nspcc-dev/neo-interop/pkg/state"
)

func popHeader(s *session.Session) (*state.Header, bool) {
	v, ok := popHandle(s, stackitem.HandleHeader)
	if !ok {
		return nil, false
	}
	h, ok := v.(*state.Header)
	return h, ok
}

// HeaderGetIndex pushes the popped header handle's block index.
func HeaderGetIndex(s *session.Session) bool {
	h, ok := popHeader(s)
	if !ok {
		return false
	}
	pushInt64(s, int64(h.Index))
	return true
}

// HeaderGetHash pushes the popped header handle's own hash.
func HeaderGetHash(s *session.Session) bool {
	h, ok := popHeader(s)
	if !ok {
		return false
	}
	pushBytes(s, h.Hash.BytesLE())
	return true
}

// HeaderGetPrevHash pushes the popped header handle's previous-block hash.
func HeaderGetPrevHash(s *session.Session) bool {
	h, ok := popHeader(s)
	if !ok {
		return false
	}
	pushBytes(s, h.PrevHash.BytesLE())
	return true
}

// HeaderGetTimestamp pushes the popped header handle's timestamp.
func HeaderGetTimestamp(s *session.Session) bool {
	h, ok := popHeader(s)
	if !ok {
		return false
	}
	pushInt64(s, int64(h.Timestamp))
	return true
}
