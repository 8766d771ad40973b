package transport

// ChanRegistry is the shared in-process switchboard linking every pair of
// ranks with a buffered channel. One registry is created per run and handed
// to every ChanTransport so sends from any rank reach the matching receive.
type ChanRegistry struct {
	size  int
	links [][]chan []float64
}

// NewChanRegistry builds a registry for size ranks.
func NewChanRegistry(size int) *ChanRegistry {
	links := make([][]chan []float64, size)
	for i := range links {
		links[i] = make([]chan []float64, size)
		for j := range links[i] {
			links[i][j] = make(chan []float64, 8)
		}
	}
	return &ChanRegistry{size: size, links: links}
}

// ChanTransport is an in-process Transport backed by a ChanRegistry, used
// for single-binary runs and tests where no MPI cluster is available.
type ChanTransport struct {
	rank int
	reg  *ChanRegistry
}

// NewChanTransport returns the Transport for rank within reg.
func NewChanTransport(rank int, reg *ChanRegistry) *ChanTransport {
	return &ChanTransport{rank: rank, reg: reg}
}

func (c *ChanTransport) Rank() int { return c.rank }
func (c *ChanTransport) Size() int { return c.reg.size }

func (c *ChanTransport) PostRecv(peer int, length int) (Handle, error) {
	result := make(chan []float64, 1)
	link := c.reg.links[peer][c.rank]
	go func() {
		result <- <-link
	}()
	return &chanHandle{ch: result, length: length}, nil
}

func (c *ChanTransport) Send(peer int, vals []float64) error {
	buf := append([]float64(nil), vals...)
	c.reg.links[c.rank][peer] <- buf
	return nil
}

func (c *ChanTransport) Wait(h Handle) ([]float64, error) {
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

var _ Transport = (*ChanTransport)(nil)
