package runtimesvc

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/nspcc-dev/neo-interop/pkg/state"
)

func TestGetTimePrefersPersistingBlock(t *testing.T) {
	mock := clock.NewMock()
	persisting := &state.Block{Header: state.Header{Timestamp: 1000}}
	best := &state.Header{Timestamp: 500}

	got := GetTime(NewRealClock(mock), persisting, best, 15)
	require.Equal(t, uint64(1000), got)
}

func TestGetTimeFallsBackToBestHeaderPlusSecondsPerBlock(t *testing.T) {
	mock := clock.NewMock()
	best := &state.Header{Timestamp: 500}

	got := GetTime(NewRealClock(mock), nil, best, 15)
	require.Equal(t, uint64(515), got)
}

func TestGetTimeFallsBackToClockWhenBootstrapping(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Unix(12345, 0))

	got := GetTime(NewRealClock(mock), nil, nil, 15)
	require.Equal(t, uint64(12345), got)
}
