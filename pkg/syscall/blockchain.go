package syscall

import (
	"github.com/nspcc-dev/neo-interop/pkg/session"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
	"github.com/nspcc-dev/neo-interop/pkg/state"
)

// GetHeight pushes the snapshot's highest persisted block index.
func GetHeight(s *session.Session) bool {
	pushInt64(s, int64(s.Snapshot.Height()))
	return true
}

// GetHeader accepts a height or a 32-byte header hash (spec §4.5) and
// pushes a handle to the resolved header, or an empty byte string on a
// miss (spec §4.5: "return either an interop handle or an empty byte
// string on miss").
func GetHeader(s *session.Session) bool {
	height, h, isHeight, ok := popHeightOrHash(s)
	if !ok {
		return false
	}
	var hdr *state.Header
	var found bool
	if isHeight {
		hdr, found = s.Snapshot.GetHeaderByIndex(height)
	} else {
		hdr, found = s.Snapshot.GetHeader(h)
	}
	if !found {
		pushBytes(s, []byte{})
		return true
	}
	pushHandle(s, stackitem.HandleHeader, hdr)
	return true
}

// GetBlock accepts a height or a 32-byte block hash and pushes a handle to
// the resolved block, or an empty byte string on a miss.
func GetBlock(s *session.Session) bool {
	height, h, isHeight, ok := popHeightOrHash(s)
	if !ok {
		return false
	}
	var blk *state.Block
	var found bool
	if isHeight {
		blk, found = s.Snapshot.GetBlockByIndex(height)
	} else {
		blk, found = s.Snapshot.GetBlock(h)
	}
	if !found {
		pushBytes(s, []byte{})
		return true
	}
	pushHandle(s, stackitem.HandleBlock, blk)
	return true
}

// GetTransaction accepts a 32-byte transaction hash and pushes a handle to
// the resolved transaction, or an empty byte string on a miss.
func GetTransaction(s *session.Session) bool {
	raw, ok := popByteArray(s)
	if !ok {
		return false
	}
	h, err := hashFromBytes(raw)
	if err != nil {
		return false
	}
	tx, found := s.Snapshot.GetTransaction(h)
	if !found {
		pushBytes(s, []byte{})
		return true
	}
	pushHandle(s, stackitem.HandleTransaction, tx)
	return true
}

// GetTransactionHeight accepts a 32-byte transaction hash and pushes the
// index of the block it was included in, or -1 when absent (spec §4.5
// "GetTransactionHeight returns -1 when absent").
func GetTransactionHeight(s *session.Session) bool {
	raw, ok := popByteArray(s)
	if !ok {
		return false
	}
	h, err := hashFromBytes(raw)
	if err != nil {
		return false
	}
	height, found := s.Snapshot.GetTransactionHeight(h)
	if !found {
		pushInt64(s, -1)
		return true
	}
	pushInt64(s, int64(height))
	return true
}

// GetContract accepts a 20-byte script hash and pushes a handle to the
// resolved contract, or an empty byte string on a miss (spec §4.5
// "GetContract returns an empty byte string when absent").
func GetContract(s *session.Session) bool {
	raw, ok := popByteArray(s)
	if !ok {
		return false
	}
	h, err := scriptHashFromBytes(raw)
	if err != nil {
		return false
	}
	c, found := s.Snapshot.GetContract(h)
	if !found {
		pushBytes(s, []byte{})
		return true
	}
	pushHandle(s, stackitem.HandleContract, c)
	return true
}
