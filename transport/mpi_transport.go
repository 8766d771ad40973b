package transport

import "github.com/cpmech/gosl/mpi"

// MPITransport implements Transport on top of gosl/mpi point-to-point
// primitives, for cluster runs where each worker type partition lives on
// its own rank.
type MPITransport struct {
	rank int
	size int
}

// NewMPITransport returns the Transport for the calling process's MPI
// rank. mpi.Start must have been called beforehand.
func NewMPITransport() *MPITransport {
	return &MPITransport{rank: mpi.Rank(), size: mpi.Size()}
}

func (m *MPITransport) Rank() int { return m.rank }
func (m *MPITransport) Size() int { return m.size }

func (m *MPITransport) PostRecv(peer int, length int) (Handle, error) {
	result := make(chan []float64, 1)
	go func() {
		buf := make([]float64, length)
		mpi.RecvOne(peer, buf)
		result <- buf
	}()
	return &chanHandle{ch: result, length: length}, nil
}

func (m *MPITransport) Send(peer int, vals []float64) error {
	mpi.SendOne(peer, vals)
	return nil
}

func (m *MPITransport) Wait(h Handle) ([]float64, error) {
	ch, ok := h.(*chanHandle)
	if !ok {
		return nil, ErrInvalidHandle
	}
	vals := <-ch.ch
	if len(vals) != ch.length {
		return nil, ErrLengthMismatch(len(vals), ch.length)
	}
	return vals, nil
}

// StartMPI initializes the MPI environment. Call once at process startup,
// mirroring the gofem main.go pattern, before constructing an MPITransport.
func StartMPI(eraseFiles bool) { mpi.Start(eraseFiles) }

// StopMPI tears down the MPI environment. Deferred from main.go.
func StopMPI(eraseFiles bool) { mpi.Stop(eraseFiles) }

// MPIIsOn reports whether the process is running under MPI.
func MPIIsOn() bool { return mpi.IsOn() }

var _ Transport = (*MPITransport)(nil)
