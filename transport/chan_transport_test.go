package transport

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChanTransport_PostRecvThenSendRoundTrip(t *testing.T) {
	reg := NewChanRegistry(2)
	r0 := NewChanTransport(0, reg)
	r1 := NewChanTransport(1, reg)

	// Rank 0 posts a receive for whatever rank 1 sends, before rank 1 sends
	// anything: this ordering is what the boundary exchange protocol relies
	// on to avoid deadlock.
	h, err := r0.PostRecv(1, 3)
	require.NoError(t, err)

	require.NoError(t, r1.Send(0, []float64{1, 2, 3}))

	got, err := r0.Wait(h)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestChanTransport_SendBeforeRecvStillDelivers(t *testing.T) {
	reg := NewChanRegistry(2)
	r0 := NewChanTransport(0, reg)
	r1 := NewChanTransport(1, reg)

	require.NoError(t, r1.Send(0, []float64{9, 8}))

	h, err := r0.PostRecv(1, 2)
	require.NoError(t, err)
	got, err := r0.Wait(h)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 8}, got)
}

func TestChanTransport_WaitRejectsForeignHandle(t *testing.T) {
	reg := NewChanRegistry(1)
	r0 := NewChanTransport(0, reg)
	_, err := r0.Wait(struct{}{})
	assert.ErrorIs(t, err, ErrInvalidHandle)
}

func TestChanTransport_LengthMismatchReported(t *testing.T) {
	reg := NewChanRegistry(2)
	r0 := NewChanTransport(0, reg)
	r1 := NewChanTransport(1, reg)

	h, err := r0.PostRecv(1, 5)
	require.NoError(t, err)
	require.NoError(t, r1.Send(0, []float64{1, 2}))
	_, err = r0.Wait(h)
	assert.Error(t, err)
}

func TestChanTransport_ConcurrentMutualExchange(t *testing.T) {
	reg := NewChanRegistry(2)
	r0 := NewChanTransport(0, reg)
	r1 := NewChanTransport(1, reg)

	var wg sync.WaitGroup
	wg.Add(2)

	var got0, got1 []float64
	go func() {
		defer wg.Done()
		h, err := r0.PostRecv(1, 1)
		require.NoError(t, err)
		require.NoError(t, r0.Send(1, []float64{10}))
		got0, err = r0.Wait(h)
		require.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		h, err := r1.PostRecv(0, 1)
		require.NoError(t, err)
		require.NoError(t, r1.Send(0, []float64{20}))
		got1, err = r1.Wait(h)
		require.NoError(t, err)
	}()
	wg.Wait()

	assert.Equal(t, []float64{20}, got0)
	assert.Equal(t, []float64{10}, got1)
}
