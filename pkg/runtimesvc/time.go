package runtimesvc

import (
	"github.com/benbjohnson/clock"

	"github.com/nspcc-dev/neo-interop/pkg/state"
)

// Clock is the narrow slice of benbjohnson/clock.Clock GetTime's bootstrap
// branch needs; defined at point of use so tests can substitute
// clock.NewMock() without pulling the whole interface in.
type Clock interface {
	Now() (unixSeconds uint64)
}

// realClock adapts clock.Clock (wall or mock) to Clock.
type realClock struct{ c clock.Clock }

// NewRealClock wraps a benbjohnson/clock.Clock (clock.New() for production,
// clock.NewMock() for tests) as a Clock.
func NewRealClock(c clock.Clock) Clock {
	return realClock{c: c}
}

func (r realClock) Now() uint64 {
	return uint64(r.c.Now().Unix())
}

// GetTime implements spec §4.4's Runtime.GetTime: the persisting block's
// timestamp takes priority, falling back to the best header's timestamp
// plus secondsPerBlock, and finally — only reachable before any block has
// ever been persisted — the wall clock. This last branch never runs in a
// live chain (genesis always supplies a best header) but keeps the
// function total instead of partial. This is deliberately predictable and
// miner-manipulable; see the design notes on the known soft-forkable
// weakness (spec §9 OQ1).
func GetTime(c Clock, persisting *state.Block, bestHeader *state.Header, secondsPerBlock uint64) uint64 {
	if persisting != nil {
		return persisting.Timestamp
	}
	if bestHeader != nil {
		return bestHeader.Timestamp + secondsPerBlock
	}
	return c.Now()
}
