package registry

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeCtx struct {
	popped []byte
	pushed int
}

type fakeMetrics struct {
	calls []string
}

func (f *fakeMetrics) ObserveDispatch(name string, price int64) {
	f.calls = append(f.calls, name)
}

func TestMethodIDMatchesDirectFourByteReinterpretation(t *testing.T) {
	id := MethodID("System.Runtime.Platform")
	method := make([]byte, 4)
	binary.LittleEndian.PutUint32(method, id)
	require.Equal(t, id, DecodeMethodID(method))
}

func TestDecodeMethodIDHashesNonFourByteNames(t *testing.T) {
	require.Equal(t, MethodID("System.Storage.Get"), DecodeMethodID([]byte("System.Storage.Get")))
}

func TestRegisterThenInvokeDispatchesAndObserves(t *testing.T) {
	m := &fakeMetrics{}
	r := New[*fakeCtx](m)
	r.Register("System.Runtime.Platform", func(ctx *fakeCtx) bool {
		ctx.pushed++
		return true
	}, 1, true)

	ok := r.Invoke(&fakeCtx{}, []byte("System.Runtime.Platform"))
	require.True(t, ok)
	require.Equal(t, []string{"System.Runtime.Platform"}, m.calls)
}

func TestInvokeUnknownMethodFails(t *testing.T) {
	r := New[*fakeCtx](nil)
	require.False(t, r.Invoke(&fakeCtx{}, []byte("Unknown.Method")))
}

func TestInvokeDoesNotObserveOnHandlerFailure(t *testing.T) {
	m := &fakeMetrics{}
	r := New[*fakeCtx](m)
	r.Register("System.Storage.Get", func(ctx *fakeCtx) bool { return false }, 100, true)

	ok := r.Invoke(&fakeCtx{}, []byte("System.Storage.Get"))
	require.False(t, ok)
	require.Empty(t, m.calls)
}

func TestPriceLookup(t *testing.T) {
	r := New[*fakeCtx](nil)
	r.Register("Storage.Get", nil, 100, true)
	r.Register("Storage.Put", nil, 0, false)

	price, ok := r.Price(MethodID("Storage.Get"))
	require.True(t, ok)
	require.Equal(t, int64(100), price)

	_, ok = r.Price(MethodID("Storage.Put"))
	require.False(t, ok, "variable-cost handlers have no static price")

	_, ok = r.Price(MethodID("Unregistered"))
	require.False(t, ok)
}

func TestFourByteMethodBypassesHashing(t *testing.T) {
	r := New[*fakeCtx](nil)
	var called bool
	r.Register("System.Blockchain.GetHeight", func(ctx *fakeCtx) bool {
		called = true
		return true
	}, 1, true)

	id := MethodID("System.Blockchain.GetHeight")
	raw := make([]byte, 4)
	binary.LittleEndian.PutUint32(raw, id)

	require.True(t, r.Invoke(&fakeCtx{}, raw))
	require.True(t, called)
}

func TestNameResolvesRegisteredID(t *testing.T) {
	r := New[*fakeCtx](nil)
	r.Register("System.Runtime.Log", func(ctx *fakeCtx) bool { return true }, 1, true)

	name, ok := r.Name(MethodID("System.Runtime.Log"))
	require.True(t, ok)
	require.Equal(t, "System.Runtime.Log", name)
}
