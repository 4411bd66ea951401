package syscall

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nspcc-dev/neo-interop/internal/fixtures"
	"github.com/nspcc-dev/neo-interop/pkg/registry"
)

func TestRegisterAllWiresStaticPricedHandlers(t *testing.T) {
	engine := fixtures.NewEngine(1000)
	s := newTestSession(engine)
	RegisterAll(s.Registry())

	require.True(t, s.Invoke([]byte("System.Runtime.Platform")))
	raw, ok := popByteArray(s)
	require.True(t, ok)
	require.Equal(t, "NEO", string(raw))
	require.Equal(t, int64(999), engine.Budget)
}

func TestRegisterAllChargesCheckWitnessAtTwoHundred(t *testing.T) {
	engine := fixtures.NewEngine(199)
	s := newTestSession(engine)
	RegisterAll(s.Registry())

	require.False(t, s.Invoke([]byte("System.Runtime.CheckWitness")), "199 < CheckWitness's 200 price")
}

func TestRegisterAllLeavesStoragePutVariable(t *testing.T) {
	engine := fixtures.NewEngine(1000)
	s := newTestSession(engine)
	RegisterAll(s.Registry())

	price, hasPrice := s.Registry().Price(registry.MethodID("System.Storage.Put"))
	require.False(t, hasPrice)
	require.Equal(t, int64(0), price)
}
