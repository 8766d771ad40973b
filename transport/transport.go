package transport

// Handle identifies a receive posted with PostRecv, to be completed later
// by Wait. Callers must treat it as opaque.
type Handle interface{}

// Transport is the post_recv -> pack -> send -> wait protocol the boundary
// exchange engine (package exchange) drives once per outer tick (spec.md
// §4.8): receives are posted before any send, which is what makes the
// protocol deadlock-free regardless of message ordering across peers.
type Transport interface {
	// Rank returns this worker's own rank.
	Rank() int
	// Size returns the total number of workers.
	Size() int
	// PostRecv registers a pending receive of length values from peer,
	// returning immediately with a Handle to Wait on later.
	PostRecv(peer int, length int) (Handle, error)
	// Send blocks until vals has been handed off to peer.
	Send(peer int, vals []float64) error
	// Wait blocks until the receive registered by h completes, returning
	// the received values.
	Wait(h Handle) ([]float64, error)
}

// chanHandle is the common Handle implementation shared by ChanTransport
// and MPITransport: both implement "post a non-blocking receive" as a
// goroutine performing a blocking receive and reporting back on ch.
type chanHandle struct {
	ch     chan []float64
	length int
}
