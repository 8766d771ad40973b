package partition

import "math"

// TypePair keys the per-type-pair virtual node layout.
type TypePair struct {
	Source, Dest string
}

// RankPair keys the per-rank-pair virtual node layout — the aggregation of
// TypePair entries whose source and destination types live on these ranks.
type RankPair struct {
	Source, Dest int
}

// VirtualPair is one wire-layout entry: the virtual-output node name on the
// sending agent and the virtual-input node name on the receiving agent for
// a single contact edge.
type VirtualPair struct {
	VOutName, VInName string
}

// ContactEdge is the core record of spec.md §3: a weighted link between a
// node on a source-typed agent and a node on a destination-typed agent,
// gated by a finite set of contact times.
type ContactEdge struct {
	SrcNode, DstNode string
	SrcType, DstType string
	Weight           float64
	ContactTimes     []float64
}

// Plan is the deterministic partition of spec.md §3 ("Partition plan") and
// §4.8: a contiguous slice of the ordered type list per worker, from which
// BuildExchangeMaps derives the two aggregated virtual-node maps. The
// exchange engine uses only RankOf and groups the contact edges itself.
type Plan struct {
	types      []string
	numWorkers int
	workerOf   map[string]int
	typesOf    map[int][]string
	byTypePair map[TypePair][]VirtualPair
	byRankPair map[RankPair][]VirtualPair
}

// NewPlan assigns worker r the contiguous slice of types [r*W, (r+1)*W),
// W = ceil(len(types)/numWorkers), with the last worker taking the
// remainder (spec.md §3).
func NewPlan(types []string, numWorkers int) (*Plan, error) {
	if len(types) == 0 {
		return nil, ErrNoTypes
	}
	if numWorkers <= 0 {
		return nil, ErrNonPositiveWorkers(numWorkers)
	}
	w := int(math.Ceil(float64(len(types)) / float64(numWorkers)))

	p := &Plan{
		types:      append([]string(nil), types...),
		numWorkers: numWorkers,
		workerOf:   make(map[string]int, len(types)),
		typesOf:    make(map[int][]string, numWorkers),
		byTypePair: make(map[TypePair][]VirtualPair),
		byRankPair: make(map[RankPair][]VirtualPair),
	}
	for i, t := range types {
		rank := i / w
		if rank >= numWorkers {
			rank = numWorkers - 1
		}
		p.workerOf[t] = rank
		p.typesOf[rank] = append(p.typesOf[rank], t)
	}
	return p, nil
}

// Types returns the ordered type list the plan was built from.
func (p *Plan) Types() []string { return append([]string(nil), p.types...) }

// NumWorkers returns the number of worker ranks.
func (p *Plan) NumWorkers() int { return p.numWorkers }

// RankOf returns the worker rank that owns typ.
func (p *Plan) RankOf(typ string) (int, bool) {
	r, ok := p.workerOf[typ]
	return r, ok
}

// TypesOnRank returns the types owned by rank, in plan order.
func (p *Plan) TypesOnRank(rank int) []string {
	return append([]string(nil), p.typesOf[rank]...)
}

// ByTypePair returns the virtual-node pairs for one (sourceType,destType)
// key, in the order they were registered by BuildExchangeMaps.
func (p *Plan) ByTypePair(pair TypePair) []VirtualPair {
	return append([]VirtualPair(nil), p.byTypePair[pair]...)
}

// ByRankPair returns the wire layout for one (sourceRank,destRank) key: the
// concatenation of every TypePair's entries whose source lies on sourceRank
// and destination on destRank, in registration order (spec.md §4.8: "index
// i in the outgoing array corresponds exactly to index i in the incoming
// array on the peer, under the same key").
func (p *Plan) ByRankPair(pair RankPair) []VirtualPair {
	return append([]VirtualPair(nil), p.byRankPair[pair]...)
}
