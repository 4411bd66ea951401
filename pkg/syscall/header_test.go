package syscall

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nspcc-dev/neo-interop/internal/fixtures"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
)

func TestHeaderAccessorsReadPoppedHandle(t *testing.T) {
	engine := fixtures.NewEngine(1000)
	s := newTestSession(engine)
	h := fixtures.Header(3, 7)

	pushHandle(s, stackitem.HandleHeader, h)
	require.True(t, HeaderGetIndex(s))
	v, ok := popInteger(s)
	require.True(t, ok)
	require.Equal(t, int64(3), v.Int64())

	pushHandle(s, stackitem.HandleHeader, h)
	require.True(t, HeaderGetHash(s))
	raw, ok := popByteArray(s)
	require.True(t, ok)
	require.Equal(t, h.Hash.BytesLE(), raw)

	pushHandle(s, stackitem.HandleHeader, h)
	require.True(t, HeaderGetPrevHash(s))
	raw, ok = popByteArray(s)
	require.True(t, ok)
	require.Equal(t, h.PrevHash.BytesLE(), raw)

	pushHandle(s, stackitem.HandleHeader, h)
	require.True(t, HeaderGetTimestamp(s))
	v, ok = popInteger(s)
	require.True(t, ok)
	require.Equal(t, int64(h.Timestamp), v.Int64())
}

func TestHeaderAccessorsFailOnWrongHandleKind(t *testing.T) {
	engine := fixtures.NewEngine(1000)
	s := newTestSession(engine)
	pushHandle(s, stackitem.HandleBlock, fixtures.Block(1, 1))

	require.False(t, HeaderGetIndex(s))
}
